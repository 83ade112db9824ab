package slots

import (
	"fmt"
	"time"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"
)

// dateRange is a half-open [From, To) window of whole local days.
type dateRange struct {
	From      time.Time
	To        time.Time
	FromLabel string
	ToLabel   string
}

func (r dateRange) days(loc *time.Location) int {
	from := r.From.In(loc)
	to := r.To.In(loc)
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// resolveRange applies the range rules shared by the public and admin
// listings: from defaults to today, to is inclusive, and a missing to means
// the legacy window.
func (uc *slotUsecase) resolveRange(request *requests.SlotRange) (dateRange, error) {
	if request == nil {
		request = &requests.SlotRange{}
	}
	request.Sanitize()
	if err := utils.ValidateStruct(request); err != nil {
		return dateRange{}, exceptions.ErrInvalidRange(err)
	}

	fromLabel := request.From
	if fromLabel == "" {
		fromLabel = utils.FormatLocalDate(uc.now(), uc.Location)
	}
	from, err := utils.ParseLocalDate(fromLabel, uc.Location)
	if err != nil {
		return dateRange{}, exceptions.ErrInvalidRange(err)
	}

	var to time.Time
	if request.To == "" {
		to = utils.AddLocalDays(from, uc.InternalConfig.Booking.LegacyWindowDays, uc.Location)
	} else {
		lastDay, err := utils.ParseLocalDate(request.To, uc.Location)
		if err != nil {
			return dateRange{}, exceptions.ErrInvalidRange(err)
		}
		if lastDay.Before(from) {
			return dateRange{}, exceptions.ErrInvalidRange(fmt.Errorf("to %s is before from %s", request.To, fromLabel))
		}
		to = utils.AddLocalDays(lastDay, 1, uc.Location)
	}

	window := dateRange{
		From:      from,
		To:        to,
		FromLabel: fromLabel,
		ToLabel:   utils.FormatLocalDate(to, uc.Location),
	}
	if maxDays := uc.InternalConfig.Booking.MaxRangeDays; window.days(uc.Location) > maxDays {
		return dateRange{}, exceptions.ErrInvalidRange(fmt.Errorf("range of %d days exceeds %d", window.days(uc.Location), maxDays))
	}
	return window, nil
}
