package openai

import (
	"fmt"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
)

const pitchSystemPrompt = `You are a car sales expert writing copy for a consumer car-shopping assistant. Write a persuasive 2-3 sentence pitch for the vehicle you are given. Explain why the vehicle fits the buyer's stated top priority. Be sure to highlight the 'Pros' from the review insights and explicitly list out some of the best vehicle features. Plain text only, no markdown, no headings.`

func buildPitchUserPrompt(vehicle *entities.Vehicle, priority string) string {
	return fmt.Sprintf(
		"Vehicle: %s\nBuyer's top priority: %s\nKey specs: %.0f MPG city, %.1fs 0-60, %.1f cu ft cargo\nReview insights: %s\nNotable features: %s\n",
		vehicle.DisplayName(),
		priority,
		vehicle.CityMPG,
		vehicle.Acceleration,
		vehicle.CargoSpace,
		vehicle.ReviewSummary,
		vehicle.Features,
	)
}
