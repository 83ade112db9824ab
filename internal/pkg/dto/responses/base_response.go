package responses

type OK struct {
	OK bool `json:"ok"`
}
