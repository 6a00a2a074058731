package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"buildsafe/go_backend/internal/domain/rams"
)

const hazardSystemPrompt = "You are a UK construction health and safety expert specializing in Risk Assessment and Method Statements (RAMS). Your task is to identify potential hazards for construction and building work activities based on comprehensive project information. You must evaluate all provided project details including work description, equipment, site conditions, operational procedures, and safety measures to generate a thorough hazard assessment.\n\nFor each hazard, you must identify:\n1. A clear hazard title\n2. Who might be harmed (specific groups of people at risk)\n3. How they might be harmed (specific injuries or health effects)\n4. A likelihood rating BEFORE control measures (1-5, where 1 is very unlikely and 5 is almost certain)\n5. A severity rating (1-5, where 1 is minor injury and 5 is fatal)\n6. Detailed control measures to mitigate the risk\n7. A likelihood rating AFTER control measures are implemented (1-5, considering how the control measures reduce the probability of the hazard occurring)\n\nYour response must be thorough, practical, and fully compliant with HSE UK regulations, CDM regulations, and current UK construction health and safety standards. Focus on the most significant hazards relevant to the specific work activities, equipment, site conditions, and operational procedures described. Consider site-specific risks, interaction with other trades, the construction environment, and all safety measures already in place.\n\nFormat your response as JSON with the following structure: { text: 'your detailed explanation of the hazard assessment approach', hazards: [{ title: 'hazard title', whoMightBeHarmed: 'who might be harmed', howMightBeHarmed: 'how they might be harmed', likelihood: number from 1-5, severity: number from 1-5, controlMeasures: ['measure 1', 'measure 2', ...], afterLikelihood: number from 1-5 }] }"

// GenerateHazards asks the model for a hazard assessment built from the
// project details, returning the explanation text and ready-to-merge
// hazards. Missing ratings fall back to mid-scale defaults.
func (s *Service) GenerateHazards(ctx context.Context, details RAMSDetails, customPrompt string) (string, []rams.Hazard, error) {
	prompt := strings.TrimSpace(customPrompt)
	if prompt == "" {
		prompt = buildHazardPrompt(details)
	}

	content, err := s.chatCompletion(ctx, hazardSystemPrompt, prompt, 0.7, true)
	if err != nil {
		return "", nil, err
	}

	var assessment hazardAssessment
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &assessment); err != nil {
		return "", nil, fmt.Errorf("invalid hazard json: %w", err)
	}

	hazards := make([]rams.Hazard, 0, len(assessment.Hazards))
	for _, h := range assessment.Hazards {
		before := h.Likelihood
		if before <= 0 {
			before = 3
		}
		severity := h.Severity
		if severity <= 0 {
			severity = 3
		}
		after := h.AfterLikelihood
		if after <= 0 {
			after = before - 1
			if after < 1 {
				after = 1
			}
		}

		measures := make([]rams.ControlMeasure, 0, len(h.ControlMeasures))
		for _, m := range h.ControlMeasures {
			measures = append(measures, rams.ControlMeasure{ID: uuid.NewString(), Description: m})
		}

		hazards = append(hazards, rams.Hazard{
			ID:               uuid.NewString(),
			Title:            strings.ToUpper(h.Title),
			WhoMightBeHarmed: h.WhoMightBeHarmed,
			HowMightBeHarmed: h.HowMightBeHarmed,
			BeforeLikelihood: before,
			BeforeSeverity:   severity,
			BeforeTotal:      before * severity,
			ControlMeasures:  measures,
			AfterLikelihood:  after,
			AfterSeverity:    severity,
			AfterTotal:       after * severity,
		})
	}
	return assessment.Text, hazards, nil
}

func buildHazardPrompt(d RAMSDetails) string {
	var b strings.Builder
	b.WriteString("Generate a comprehensive list of potential hazards for a RAMS (Risk Assessment and Method Statement) based on the following project details:\n")

	section := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "\n%s: %s\n", label, value)
		}
	}
	section("Description of Works", d.Description)
	section("Tools and Equipment", d.ToolsEquipment)
	section("Plant Equipment", d.PlantEquipment)
	section("Operational Sequence", d.Sequence)
	section("Site Hours", d.SiteHours)
	section("Lighting", d.Lighting)
	section("Services", d.Services)
	section("Access Equipment", d.AccessEquipment)
	section("Hazardous Equipment", d.HazardousEquipment)
	section("Welfare and First Aid", d.WelfareFirstAid)
	section("Fire Action Plan", d.FireActionPlan)
	section("Protection of Public", d.ProtectionOfPublic)
	section("Clean Up", d.CleanUp)
	section("Order of Works Safety", d.OrderOfWorksSafety)
	section("Custom Order of Works", d.OrderOfWorksCustom)
	section("Delivery Information", d.DeliveryInfo)
	section("Groundworks Information", d.GroundworksInfo)
	if len(d.PPE) > 0 {
		section("PPE Requirements", strings.Join(d.PPE, ", "))
	}

	b.WriteString("\nFor each hazard, please provide:\n")
	b.WriteString("1. A specific hazard title\n")
	b.WriteString("2. Who might be harmed (specific groups of people at risk)\n")
	b.WriteString("3. How they might be harmed (specific injuries or health effects)\n")
	b.WriteString("4. A likelihood rating BEFORE control measures (1-5, where 1 is very unlikely and 5 is almost certain)\n")
	b.WriteString("5. A severity rating (1-5, where 1 is minor injury and 5 is fatal)\n")
	b.WriteString("6. Detailed control measures to mitigate the risk\n")
	b.WriteString("7. A likelihood rating AFTER control measures are implemented (1-5, considering how the control measures reduce the probability of the hazard occurring)\n")
	b.WriteString("\nEvaluate all the provided information and generate hazards that are specifically relevant to the work activities, equipment, site conditions, and operational procedures described. Ensure all recommendations are compliant with HSE UK regulations and current safety standards.")
	return b.String()
}
