package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const hospitalSystemPrompt = "You are a helpful assistant specializing in UK healthcare and emergency services. Your task is to identify the nearest NHS Accident & Emergency (A&E) department to a given UK postcode. Provide accurate, up-to-date information about NHS hospitals with A&E facilities. Always verify that the hospital has a full A&E department (not just an urgent care centre). Format your response as plain text without any markdown formatting (no asterisks, no bold, no special characters). Use simple labels like 'Hospital Name:', 'Address:', etc. with clear line breaks."

// LocateHospital finds the nearest NHS A&E department to a site postcode.
func (s *Service) LocateHospital(ctx context.Context, postcode string) (string, error) {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return "", errors.New("postcode is required")
	}

	prompt := fmt.Sprintf(`Find the nearest NHS Accident & Emergency (A&E) department to the UK postcode: %s

Please provide the following information in a clear, concise format:
- Hospital Name
- Full Address
- Postcode
- Distance from %s (approximate)
- Contact Number (main hospital switchboard)

Format the response as plain text with clear labeling. Only include verified NHS hospitals with A&E departments. If the postcode is invalid or you cannot determine the nearest hospital, please state that clearly.`, postcode, postcode)

	return s.chatCompletion(ctx, hospitalSystemPrompt, prompt, 0.3, false)
}
