package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	req := testRequest()
	prompt := BuildPrompt(req)

	assert.Contains(t, prompt, "Generate 4 unique promotional content variations for the Millennia credit card from HDFC Bank.")
	assert.Contains(t, prompt, "Platform: Instagram\n")
	assert.Contains(t, prompt, "Target Audience: Students\n")
	assert.Contains(t, prompt, "Language: English\n")
	assert.Contains(t, prompt, "Tone: Friendly\n")
	assert.Contains(t, prompt, "relevant hashtags")
	assert.Contains(t, prompt, "numbered list")
	assert.NotContains(t, prompt, "Additional Instructions")
}

func TestBuildPrompt_CustomInstructions(t *testing.T) {
	req := testRequest()
	req.CustomPrompt = "  mention the lounge access  "
	req.Platform = "Carrier pigeon"

	prompt := BuildPrompt(req)
	assert.Contains(t, prompt, "Additional Instructions: mention the lounge access\n")
	assert.Contains(t, prompt, "Platform: Carrier pigeon\n")
}

func TestMockClient(t *testing.T) {
	raw, err := MockClient{}.Complete(context.Background(), BuildPrompt(testRequest()))
	assert.NoError(t, err)

	got := SplitVariations(raw, testRequest())
	assert.Len(t, got, 4)
	assert.Contains(t, got[0], "Millennia")
	assert.Contains(t, got[0], "students")
	assert.Contains(t, got[2], "Made for Instagram")
}
