package responses

type FAQItem struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

type FAQ struct {
	FAQ []FAQItem `json:"faq"`
}

type AudienceItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Audience struct {
	DlaKogo []AudienceItem `json:"dlaKogo"`
}

type About struct {
	Format string `json:"format"`
	Body   string `json:"body"`
}
