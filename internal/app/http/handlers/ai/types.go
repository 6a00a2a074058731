package ai

type openAIChatRequest struct {
	Model          string                `json:"model"`
	Messages       []openAIChatMessage   `json:"messages"`
	MaxTokens      int                   `json:"max_completion_tokens,omitempty"`
	Temperature    float64               `json:"temperature,omitempty"`
	ResponseFormat *openAIResponseFormat `json:"response_format,omitempty"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

// RAMSDetails carries the already-entered RAMS form fields used to build
// the hazard generation prompt. Empty fields are left out of the prompt.
type RAMSDetails struct {
	Description        string   `json:"description"`
	ToolsEquipment     string   `json:"tools_equipment"`
	PlantEquipment     string   `json:"plant_equipment"`
	Sequence           string   `json:"sequence"`
	SiteHours          string   `json:"site_hours"`
	Lighting           string   `json:"lighting"`
	Services           string   `json:"services"`
	AccessEquipment    string   `json:"access_equipment"`
	HazardousEquipment string   `json:"hazardous_equipment"`
	WelfareFirstAid    string   `json:"welfare_first_aid"`
	FireActionPlan     string   `json:"fire_action_plan"`
	ProtectionOfPublic string   `json:"protection_of_public"`
	CleanUp            string   `json:"clean_up"`
	OrderOfWorksSafety string   `json:"order_of_works_safety"`
	OrderOfWorksCustom string   `json:"order_of_works_custom"`
	DeliveryInfo       string   `json:"delivery_info"`
	GroundworksInfo    string   `json:"groundworks_info"`
	PPE                []string `json:"ppe"`
}

type hazardAssessment struct {
	Text    string      `json:"text"`
	Hazards []apiHazard `json:"hazards"`
}

type apiHazard struct {
	Title            string   `json:"title"`
	WhoMightBeHarmed string   `json:"whoMightBeHarmed"`
	HowMightBeHarmed string   `json:"howMightBeHarmed"`
	Likelihood       int      `json:"likelihood"`
	Severity         int      `json:"severity"`
	ControlMeasures  []string `json:"controlMeasures"`
	AfterLikelihood  int      `json:"afterLikelihood"`
}
