package ai

import (
	"context"
	"strings"
)

const sequenceSystemPrompt = "You are a UK construction and health & safety expert specializing in creating detailed operational sequences for Risk Assessment and Method Statements (RAMS). Your task is to generate a comprehensive, step-by-step operational sequence that ensures safe and efficient completion of construction work in compliance with HSE UK regulations.\n\nYour operational sequence should include:\n\n1. Pre-Work Preparation - Site setup, safety briefings, equipment checks, permit to work procedures\n2. Work Methodology - Detailed step-by-step procedures for completing the work safely\n3. Quality Control - Inspection points and quality checks throughout the process\n4. Safety Considerations - Ongoing safety measures, monitoring, and HSE compliance\n5. Completion Procedures - Final checks, handover, and documentation\n6. Clean-up and Restoration - Site cleanup and restoration to original condition\n\nYour response must be thorough, practical, and fully compliant with HSE UK regulations, CDM regulations, and current UK construction and health & safety standards. Format your response as a well-structured document with clear numbering, bullet points, and logical flow. Do not include project-specific details like client names, site managers, or assessors in the output - focus purely on the operational sequence. Use markdown formatting for better readability."

// GenerateSequence produces an operational sequence as free text.
func (s *Service) GenerateSequence(ctx context.Context, description, customPrompt string) (string, error) {
	prompt := strings.TrimSpace(customPrompt)
	if prompt == "" {
		prompt = buildSequencePrompt(description)
	}
	return s.chatCompletion(ctx, sequenceSystemPrompt, prompt, 0.7, false)
}

func buildSequencePrompt(description string) string {
	var b strings.Builder
	b.WriteString("Generate a detailed operational sequence for a RAMS (Risk Assessment and Method Statement)")
	if strings.TrimSpace(description) != "" {
		b.WriteString(" for the following work:\n")
		b.WriteString(description)
		b.WriteString("\n")
	} else {
		b.WriteString(".\n")
	}
	b.WriteString("\nPlease provide a comprehensive operational sequence that covers:\n")
	b.WriteString("1. Pre-work preparation and site setup\n")
	b.WriteString("2. Step-by-step work methodology\n")
	b.WriteString("3. Quality checks and inspections\n")
	b.WriteString("4. Completion and handover procedures\n")
	b.WriteString("5. Clean-up and site restoration\n")
	b.WriteString("\nEnsure the sequence is logical, detailed, and complies with HSE UK regulations and health and safety best practices. Each step should be clear and actionable for the work crew.")
	return b.String()
}
