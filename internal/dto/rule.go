package dto

type AddRuleRequest struct {
	Trigger  string `json:"trigger" validate:"required"`
	Response string `json:"response" validate:"required"`
	Active   bool   `json:"active"`
}

type RuleResponse struct {
	ID       string `json:"id"`
	Trigger  string `json:"trigger"`
	Response string `json:"response"`
	Active   bool   `json:"active"`
}
