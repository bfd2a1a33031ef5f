package content

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is a local stand-in that never calls a model. It answers with
// a numbered list assembled from the prompt's header lines.
type MockClient struct{}

func (MockClient) Complete(_ context.Context, prompt string) (string, error) {
	fields := promptFields(prompt)
	card := fields["card"]
	audience := fields["Target Audience"]
	platform := fields["Platform"]

	lines := []string{
		fmt.Sprintf("Meet %s - rewards that keep up with %s.", card, strings.ToLower(audience)),
		fmt.Sprintf("Every swipe counts with %s. Apply today!", card),
		fmt.Sprintf("Made for %s: %s brings benefits you will actually use.", platform, card),
		fmt.Sprintf("Upgrade your wallet with %s. Limited time offers inside.", card),
	}

	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}
	return sb.String(), nil
}

func (MockClient) Provider() string { return ProviderMock }

func (MockClient) Model() string { return "mock" }

// promptFields pulls "Key: value" header lines and the card name out of a
// prompt built by BuildPrompt.
func promptFields(prompt string) map[string]string {
	fields := map[string]string{"card": "this card"}
	lines := strings.Split(prompt, "\n")
	if len(lines) > 0 {
		first := lines[0]
		if i := strings.Index(first, " for the "); i >= 0 {
			rest := first[i+len(" for the "):]
			if j := strings.Index(rest, " credit card"); j >= 0 {
				fields["card"] = rest[:j]
			}
		}
	}
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ": ")
		if ok && !strings.HasPrefix(key, "-") {
			fields[key] = strings.TrimSpace(value)
		}
	}
	return fields
}
