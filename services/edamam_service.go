package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const edamamBaseURL = "https://api.edamam.com"

// EdamamService queries the Edamam Nutrition Analysis API. It is the
// first provider in the lookup chain.
type EdamamService struct {
	AppID   string
	AppKey  string
	BaseURL string       // overridable in tests
	Client  *http.Client // overridable in tests
}

func NewEdamamService(appID, appKey string) *EdamamService {
	return &EdamamService{
		AppID:  appID,
		AppKey: appKey,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *EdamamService) Name() string { return "edamam" }

type edamamResponse struct {
	Calories       float64 `json:"calories"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

func (s *EdamamService) Lookup(ctx context.Context, foodName string) (*NutritionResult, error) {
	if s.AppID == "" || s.AppKey == "" {
		return nil, fmt.Errorf("%w: edamam credentials not configured", ErrProviderUnavailable)
	}

	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = edamamBaseURL
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	payload := map[string]interface{}{
		"title": foodName,
		"ingr":  []string{fmt.Sprintf("1 serving of %s", foodName)},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal edamam payload: %v", ErrProviderUnavailable, err)
	}

	u := fmt.Sprintf("%s/api/nutrition-details?app_id=%s&app_key=%s", baseURL, s.AppID, s.AppKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: create edamam request: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: call edamam: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read edamam response: %v", ErrProviderUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: edamam status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var er edamamResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("%w: parse edamam JSON: %v", ErrProviderUnavailable, err)
	}

	nutrient := func(key string) float64 { return round1(er.TotalNutrients[key].Quantity) }

	return &NutritionResult{
		FoodName:    TitleCase(foodName),
		Calories:    round1(er.Calories),
		Protein:     nutrient("PROCNT"),
		Carbs:       nutrient("CHOCDF"),
		Fats:        nutrient("FAT"),
		Fiber:       nutrient("FIBTG"),
		ServingSize: "1 serving",
		HealthTips:  fmt.Sprintf("This meal contains %.1fg of sugar.", nutrient("SUGAR")),
	}, nil
}
