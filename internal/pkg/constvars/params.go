package constvars

const (
	URLParamID = "id"
)

const (
	QueryParamFrom = "from"
	QueryParamTo   = "to"
)
