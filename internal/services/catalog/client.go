package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardcopy/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// lookupPayload is the catalog's filter body. Every filter is left empty so
// the whole catalog comes back and matching happens locally.
type lookupPayload struct {
	BankIDs            []int          `json:"banks_ids"`
	CardNetworks       []string       `json:"card_networks"`
	AnnualFees         string         `json:"annualFees"`
	CreditScore        string         `json:"credit_score"`
	SortBy             string         `json:"sort_by"`
	FreeCards          string         `json:"free_cards"`
	EligibilityPayload map[string]any `json:"eligiblityPayload"`
	CardGeniusPayload  map[string]any `json:"cardGeniusPayload"`
}

func emptyFilter() lookupPayload {
	return lookupPayload{
		BankIDs:            []int{},
		CardNetworks:       []string{},
		EligibilityPayload: map[string]any{},
		CardGeniusPayload:  map[string]any{},
	}
}

// HTTPCatalogClient calls the external catalog endpoint.
type HTTPCatalogClient struct {
	url     string
	timeout time.Duration
}

func NewHTTPCatalogClient(url string, timeout time.Duration) *HTTPCatalogClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPCatalogClient{url: url, timeout: timeout}
}

func (c *HTTPCatalogClient) Lookup(ctx context.Context) ([]models.CatalogCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Post(c.url)
	agent.JSON(emptyFilter())
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog request failed: %w", errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("catalog responded with status %d", code)
	}
	return DecodeCatalog(body)
}

// consumedFields are the catalog keys mapped onto CatalogCard fields. Any
// other key of an item is kept in CatalogCard.Extra.
var consumedFields = map[string]bool{
	"id":               true,
	"card_name":        true,
	"issuing_bank":     true,
	"seo_card_alias":   true,
	"card_type":        true,
	"joining_fee_text": true,
	"annual_fee_text":  true,
	"rewards":          true,
	"reward_summary":   true,
	"card_network":     true,
}

// DecodeCatalog reads either {"cards": [...]}, {"data": {"cards": [...]}}
// or a bare array. Numeric and string ids are both accepted.
func DecodeCatalog(body []byte) ([]models.CatalogCard, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("catalog response is not valid JSON")
	}

	root := gjson.ParseBytes(body)
	var list gjson.Result
	switch {
	case root.IsArray():
		list = root
	case root.Get("cards").IsArray():
		list = root.Get("cards")
	case root.Get("data.cards").IsArray():
		list = root.Get("data.cards")
	case root.Get("data").IsArray():
		list = root.Get("data")
	default:
		return nil, errors.New("catalog response has no card list")
	}

	cards := make([]models.CatalogCard, 0, len(list.Array()))
	list.ForEach(func(_, item gjson.Result) bool {
		name := item.Get("card_name").String()
		if name == "" {
			return true
		}
		rewards := item.Get("rewards").String()
		if rewards == "" {
			rewards = item.Get("reward_summary").String()
		}
		cards = append(cards, models.CatalogCard{
			ExternalID:  item.Get("id").String(),
			Name:        name,
			Bank:        item.Get("issuing_bank").String(),
			Alias:       item.Get("seo_card_alias").String(),
			CardType:    item.Get("card_type").String(),
			JoiningFee:  item.Get("joining_fee_text").String(),
			AnnualFee:   item.Get("annual_fee_text").String(),
			Rewards:     rewards,
			CardNetwork: item.Get("card_network").String(),
			Extra:       extraFields(item),
		})
		return true
	})
	return cards, nil
}

func extraFields(item gjson.Result) map[string]any {
	var extra map[string]any
	item.ForEach(func(key, value gjson.Result) bool {
		if consumedFields[key.String()] {
			return true
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key.String()] = value.Value()
		return true
	})
	return extra
}
