package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const ninjasBaseURL = "https://api.api-ninjas.com"

// NinjasService queries the API Ninjas nutrition endpoint, second in the
// lookup chain.
type NinjasService struct {
	APIKey  string
	BaseURL string       // overridable in tests
	Client  *http.Client // overridable in tests
}

func NewNinjasService(apiKey string) *NinjasService {
	return &NinjasService{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NinjasService) Name() string { return "api-ninjas" }

type ninjasItem struct {
	Name          string   `json:"name"`
	Calories      float64  `json:"calories"`
	ProteinG      float64  `json:"protein_g"`
	CarbsTotalG   float64  `json:"carbohydrates_total_g"`
	FatTotalG     float64  `json:"fat_total_g"`
	FiberG        float64  `json:"fiber_g"`
	SugarG        float64  `json:"sugar_g"`
	ServingSizeG  *float64 `json:"serving_size_g"`
}

func (s *NinjasService) Lookup(ctx context.Context, foodName string) (*NutritionResult, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = ninjasBaseURL
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	u := fmt.Sprintf("%s/v1/nutrition?query=%s", baseURL, url.QueryEscape(foodName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create api-ninjas request: %v", ErrProviderUnavailable, err)
	}
	if s.APIKey != "" {
		req.Header.Set("X-Api-Key", s.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: call api-ninjas: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read api-ninjas response: %v", ErrProviderUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: api-ninjas status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var items []ninjasItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: parse api-ninjas JSON: %v", ErrProviderUnavailable, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no api-ninjas match for %q", ErrProviderUnavailable, foodName)
	}

	item := items[0]
	name := item.Name
	if name == "" {
		name = foodName
	}
	servingG := 100.0
	if item.ServingSizeG != nil {
		servingG = *item.ServingSizeG
	}

	return &NutritionResult{
		FoodName:    TitleCase(name),
		Calories:    round1(item.Calories),
		Protein:     round1(item.ProteinG),
		Carbs:       round1(item.CarbsTotalG),
		Fats:        round1(item.FatTotalG),
		Fiber:       round1(item.FiberG),
		ServingSize: fmt.Sprintf("%.0fg", servingG),
		HealthTips:  fmt.Sprintf("Contains %.1fg of sugar.", round1(item.SugarG)),
	}, nil
}
