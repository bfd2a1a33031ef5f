package content

import (
	"fmt"
	"strings"
)

var platformHints = map[string]string{
	"twitter":   "Keep each variation under 280 characters and add one or two relevant hashtags.",
	"x":         "Keep each variation under 280 characters and add one or two relevant hashtags.",
	"sms":       "Keep each variation under 160 characters with no hashtags or emojis.",
	"whatsapp":  "Keep each variation short and conversational, suitable for a broadcast message.",
	"instagram": "Use a catchy opening line, a few emojis and relevant hashtags.",
	"facebook":  "Write a short engaging post with a clear call to action.",
	"linkedin":  "Keep it professional and value focused, without slang.",
	"email":     "Start each variation with a short subject-style line, then two or three sentences.",
}

// BuildPrompt turns the request into the instruction sent to the model.
// The model is asked for a numbered list so SplitVariations can parse it.
func BuildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d unique promotional content variations for the %s credit card", variationCount, req.CardName))
	if req.BankName != "" {
		sb.WriteString(fmt.Sprintf(" from %s", req.BankName))
	}
	sb.WriteString(".\n\n")
	sb.WriteString(fmt.Sprintf("Platform: %s\n", req.Platform))
	sb.WriteString(fmt.Sprintf("Target Audience: %s\n", req.Audience))
	sb.WriteString(fmt.Sprintf("Language: %s\n", req.Language))
	sb.WriteString(fmt.Sprintf("Tone: %s\n", req.Tone))
	if custom := strings.TrimSpace(req.CustomPrompt); custom != "" {
		sb.WriteString(fmt.Sprintf("Additional Instructions: %s\n", custom))
	}

	sb.WriteString("\nRequirements:\n")
	sb.WriteString(fmt.Sprintf("- Write every variation in %s.\n", req.Language))
	sb.WriteString(fmt.Sprintf("- Speak directly to %s in a %s tone.\n", strings.ToLower(req.Audience), strings.ToLower(req.Tone)))
	if hint, ok := platformHints[strings.ToLower(strings.TrimSpace(req.Platform))]; ok {
		sb.WriteString("- " + hint + "\n")
	}
	sb.WriteString("- Highlight the card's key benefits and end with a call to action.\n")
	sb.WriteString("- Do not invent interest rates, fees or offers.\n")
	sb.WriteString(fmt.Sprintf("\nReturn exactly %d variations as a numbered list (1. 2. 3. 4.) with no other text.", variationCount))
	return sb.String()
}
