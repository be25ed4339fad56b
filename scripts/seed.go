package main

import (
	"context"
	"log"
	"os"

	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/database"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/adapters/search"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/application/services"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/entities"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/domain/repositories"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Carbuyeradvisordesign/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	var searchRepo repositories.VehicleSearchRepository
	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err == nil {
		if err := tsClient.InitSchema(context.Background()); err != nil {
			log.Printf("Failed to init Typesense schema: %v", err)
		}
		searchRepo = search.NewTypesenseAdapter(tsClient)
	}

	vehicleRepo := database.NewVehicleAdapter(pgClient)
	catalogService := services.NewCatalogService(vehicleRepo, searchRepo, nil)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				vehicles
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	vehicles := seedFleet()

	log.Printf("Seeding %d vehicles...", len(vehicles))
	for i := range vehicles {
		vehicle := &vehicles[i]
		if err := catalogService.Create(ctx, vehicle); err != nil {
			log.Printf("Failed to create vehicle %s %s: %v", vehicle.Make, vehicle.Model, err)
			continue
		}
		log.Printf("Created %s", vehicle.DisplayName())
	}

	log.Println("Seeding complete.")
}

func seedFleet() []entities.Vehicle {
	return []entities.Vehicle{
		// Hybrids
		{Make: "Toyota", Model: "Prius", Year: 2024, Class: "Sedan", Price: 28000, CityMPG: 57, HwyMPG: 56, FuelType: entities.FuelTypeHybrid, ReliabilityScore: 9.5, LuxuryScore: 5, FunScore: 4.5, Features: "Toyota Safety Sense 3.0, Wireless CarPlay, Solar Roof, Heated Seats", CargoSpace: 20.3, RearLegroom: 34.8, Acceleration: 7.2, ReviewSummary: "Pros: Incredible MPG, sleek new design. Cons: Rear headroom is tight.", DriverAssistScore: 7, DriverAssistName: "Toyota Safety Sense™ 3.0", DriverAssistLink: "https://www.toyota.com/safety-sense/", OffroadCapability: 2, Seats: 5},
		{Make: "Honda", Model: "CR-V Hybrid", Year: 2024, Class: "SUV", Price: 34000, CityMPG: 43, HwyMPG: 36, FuelType: entities.FuelTypeHybrid, ReliabilityScore: 9.0, LuxuryScore: 6, FunScore: 4.5, Features: "Honda Sensing, Bose Audio, Leather Seats, Moonroof", CargoSpace: 39.3, RearLegroom: 41.0, Acceleration: 7.6, ReviewSummary: "Pros: Spacious interior, smooth hybrid system. Cons: No spare tire.", DriverAssistScore: 6, DriverAssistName: "Honda Sensing®", DriverAssistLink: "https://automobiles.honda.com/sensing", OffroadCapability: 5, Seats: 5},
		{Make: "Ford", Model: "Maverick Hybrid", Year: 2024, Class: "Pickup", Price: 26000, CityMPG: 42, HwyMPG: 33, FuelType: entities.FuelTypeHybrid, ReliabilityScore: 8.0, LuxuryScore: 4, FunScore: 5.5, Features: "FLEXBED System, Apple CarPlay, Ford Co-Pilot360, Crew Cab", CargoSpace: 33.3, RearLegroom: 36.9, Acceleration: 7.7, ReviewSummary: "Pros: Unbeatable price and MPG for a truck. Cons: Cheap interior plastics.", DriverAssistScore: 5, DriverAssistName: "Ford Co-Pilot360™", DriverAssistLink: "https://www.ford.com/technology/driver-assist-technology/", OffroadCapability: 4, Seats: 5},
		{Make: "Lexus", Model: "ES 300h", Year: 2024, Class: "Sedan", Price: 44000, CityMPG: 43, HwyMPG: 44, FuelType: entities.FuelTypeHybrid, ReliabilityScore: 9.5, LuxuryScore: 8, FunScore: 4.0, Features: "Lexus Safety System+ 2.5, Mark Levinson Audio, Ultra Luxury Package", CargoSpace: 13.9, RearLegroom: 39.2, Acceleration: 8.1, ReviewSummary: "Pros: Extremely quiet, plush ride, excellent fuel economy. Cons: Not sporty.", DriverAssistScore: 7, DriverAssistName: "Lexus Safety System+ 2.5", DriverAssistLink: "https://www.lexus.com/safety", OffroadCapability: 2, Seats: 5},

		// Gas
		{Make: "Toyota", Model: "Camry", Year: 2024, Class: "Sedan", Price: 28000, CityMPG: 28, HwyMPG: 39, FuelType: entities.FuelTypeGas, ReliabilityScore: 9.0, LuxuryScore: 5, FunScore: 5.0, Features: "Apple CarPlay, Toyota Safety Sense 2.5+, 9-inch Touchscreen, Dual-Zone Climate", CargoSpace: 15.1, RearLegroom: 38.0, Acceleration: 7.6, ReviewSummary: "Pros: Comfortable ride, user-friendly controls. Cons: Noisier cabin than some rivals.", DriverAssistScore: 6, DriverAssistName: "Toyota Safety Sense™ 2.5+", DriverAssistLink: "https://www.toyota.com/safety-sense/", OffroadCapability: 2, Seats: 5},
		{Make: "Honda", Model: "Civic", Year: 2024, Class: "Sedan", Price: 26000, CityMPG: 31, HwyMPG: 40, FuelType: entities.FuelTypeGas, ReliabilityScore: 9.0, LuxuryScore: 4, FunScore: 6.5, Features: "Honda Sensing, Bose Audio, 9-inch Screen, Wireless CarPlay", CargoSpace: 14.8, RearLegroom: 37.4, Acceleration: 7.5, ReviewSummary: "Pros: Agile handling, spacious cabin for a compact. Cons: Road noise.", DriverAssistScore: 6, DriverAssistName: "Honda Sensing®", DriverAssistLink: "https://automobiles.honda.com/sensing", OffroadCapability: 2, Seats: 5},
		{Make: "BMW", Model: "3 Series", Year: 2024, Class: "Sedan", Price: 48000, CityMPG: 25, HwyMPG: 34, FuelType: entities.FuelTypeGas, ReliabilityScore: 6.5, LuxuryScore: 8, FunScore: 8.5, Features: "iDrive 8 Curved Display, Vernasca Leather, Head-up Display, M Sport Package", CargoSpace: 17.0, RearLegroom: 35.2, Acceleration: 5.6, ReviewSummary: "Pros: Powerful engines, excellent handling balance. Cons: Steering lacks feedback.", DriverAssistScore: 8, DriverAssistName: "Driving Assistant Professional", DriverAssistLink: "https://www.bmwusa.com/technology/driver-assistance.html", OffroadCapability: 3, Seats: 5},
		{Make: "Mercedes-Benz", Model: "C-Class", Year: 2024, Class: "Sedan", Price: 49000, CityMPG: 23, HwyMPG: 33, FuelType: entities.FuelTypeGas, ReliabilityScore: 6.0, LuxuryScore: 9, FunScore: 7.5, Features: "MBUX AI, Burmester 3D Audio, 64-Color Ambient Lighting, Augmented Video Nav", CargoSpace: 12.6, RearLegroom: 36.0, Acceleration: 6.0, ReviewSummary: "Pros: Stunning interior design, tech-forward. Cons: Touch-sensitive controls can be finicky.", DriverAssistScore: 8, DriverAssistName: "Driver Assistance Package", DriverAssistLink: "https://www.mbusa.com/en/technology/safety", OffroadCapability: 3, Seats: 5},
		{Make: "Nissan", Model: "Versa", Year: 2024, Class: "Sedan", Price: 18000, CityMPG: 32, HwyMPG: 40, FuelType: entities.FuelTypeGas, ReliabilityScore: 7.5, LuxuryScore: 2, FunScore: 3.0, Features: "Zero Gravity Seats, Safety Shield 360, Wireless Charging", CargoSpace: 14.7, RearLegroom: 31.0, Acceleration: 10.0, ReviewSummary: "Pros: Lots of safety tech for the price. Cons: Slow acceleration, tight back seat.", DriverAssistScore: 5, DriverAssistName: "Nissan Safety Shield® 360", DriverAssistLink: "https://www.nissanusa.com/experience-nissan/intelligent-mobility/safety-shield.html", OffroadCapability: 1, Seats: 5},
		{Make: "Kia", Model: "Telluride", Year: 2024, Class: "SUV", Price: 38000, CityMPG: 20, HwyMPG: 26, FuelType: entities.FuelTypeGas, ReliabilityScore: 8.5, LuxuryScore: 7, FunScore: 5.0, Features: "Dual Panoramic Screens, Nappa Leather, Driver Talk Intercom, Quiet Mode", CargoSpace: 21.0, RearLegroom: 42.4, Acceleration: 7.0, ReviewSummary: "Pros: Upscale feel, adult-friendly 3rd row. Cons: Fuel economy is average.", DriverAssistScore: 7, DriverAssistName: "Highway Driving Assist 2", DriverAssistLink: "https://www.kia.com/us/en/drive-wise", OffroadCapability: 5, Seats: 7},
		{Make: "Toyota", Model: "RAV4 Hybrid", Year: 2024, Class: "SUV", Price: 32000, CityMPG: 41, HwyMPG: 38, FuelType: entities.FuelTypeGas, ReliabilityScore: 9.5, LuxuryScore: 5, FunScore: 4.5, Features: "Digital Rearview Mirror, JBL Audio, Panoramic Glass Roof", CargoSpace: 37.5, RearLegroom: 37.8, Acceleration: 7.4, ReviewSummary: "Pros: High MPG, practical cargo shape. Cons: Engine can drone on highway.", DriverAssistScore: 6, DriverAssistName: "Toyota Safety Sense™ 2.5", DriverAssistLink: "https://www.toyota.com/safety-sense/", OffroadCapability: 6, Seats: 5},
		{Make: "Lexus", Model: "RX", Year: 2024, Class: "SUV", Price: 52000, CityMPG: 22, HwyMPG: 29, FuelType: entities.FuelTypeGas, ReliabilityScore: 9.5, LuxuryScore: 9, FunScore: 4.0, Features: "Mark Levinson PurePlay, Traffic Jam Assist, E-Latch Door Handles", CargoSpace: 29.6, RearLegroom: 37.4, Acceleration: 7.2, ReviewSummary: "Pros: Ultra-quiet cabin, plush ride. Cons: Fussy infotainment in older models.", DriverAssistScore: 7, DriverAssistName: "Lexus Safety System+ 3.0", DriverAssistLink: "https://www.lexus.com/safety", OffroadCapability: 4, Seats: 5},
		{Make: "Subaru", Model: "Outback", Year: 2024, Class: "SUV", Price: 30000, CityMPG: 26, HwyMPG: 32, FuelType: entities.FuelTypeGas, ReliabilityScore: 8.5, LuxuryScore: 5, FunScore: 5.0, Features: "EyeSight Driver Assist, StarTex Water-Repellent Upholstery, Roof Rails", CargoSpace: 32.5, RearLegroom: 39.5, Acceleration: 8.5, ReviewSummary: "Pros: Standard AWD, rugged utility. Cons: CVT transmission feels rubbery.", DriverAssistScore: 6, DriverAssistName: "Subaru EyeSight®", DriverAssistLink: "https://www.subaru.com/engineering/eyesight.html", OffroadCapability: 8, Seats: 5},
		{Make: "Ford", Model: "F-150", Year: 2024, Class: "Pickup", Price: 45000, CityMPG: 20, HwyMPG: 26, FuelType: entities.FuelTypeGas, ReliabilityScore: 7.5, LuxuryScore: 6, FunScore: 6.0, Features: "Pro Power Onboard (Generator), BlueCruise Hands-Free, Max Recline Seats", CargoSpace: 52.8, RearLegroom: 43.6, Acceleration: 6.0, ReviewSummary: "Pros: Class-leading towing, generator feature. Cons: Gets expensive quickly.", DriverAssistScore: 9, DriverAssistName: "Ford BlueCruise Hands-Free", DriverAssistLink: "https://www.ford.com/technology/bluecruise/", OffroadCapability: 8, Seats: 5},
		{Make: "Ram", Model: "1500", Year: 2024, Class: "Pickup", Price: 48000, CityMPG: 19, HwyMPG: 24, FuelType: entities.FuelTypeGas, ReliabilityScore: 7.0, LuxuryScore: 7, FunScore: 6.0, Features: "Multi-Function Tailgate, RamBox Cargo Management, 12-inch Uconnect", CargoSpace: 53.9, RearLegroom: 45.2, Acceleration: 6.5, ReviewSummary: "Pros: Best ride quality in class (coil springs), luxury interior. Cons: Lower towing than Ford.", DriverAssistScore: 5, DriverAssistName: "Advanced Safety Group", DriverAssistLink: "https://www.ramtrucks.com/safety-security.html", OffroadCapability: 7, Seats: 5},
		{Make: "Porsche", Model: "911", Year: 2024, Class: "Sports", Price: 115000, CityMPG: 18, HwyMPG: 24, FuelType: entities.FuelTypeGas, ReliabilityScore: 7.5, LuxuryScore: 9, FunScore: 10.0, Features: "PDK Transmission, Sport Chrono Package, Wet Mode", CargoSpace: 4.6, RearLegroom: 27.0, Acceleration: 3.5, ReviewSummary: "Pros: Telepathic steering, timeless design. Cons: Expensive options list, tiny back seat.", DriverAssistScore: 7, DriverAssistName: "Porsche InnoDrive", DriverAssistLink: "https://www.porsche.com/international/technology/innodrive/", OffroadCapability: 2, Seats: 4},
		{Make: "Mazda", Model: "MX-5 Miata", Year: 2024, Class: "Sports", Price: 29000, CityMPG: 26, HwyMPG: 35, FuelType: entities.FuelTypeGas, ReliabilityScore: 8.5, LuxuryScore: 5, FunScore: 9.5, Features: "Kinematic Posture Control, Bilstein Dampers, Brembo Brakes", CargoSpace: 4.6, RearLegroom: 0.0, Acceleration: 6.0, ReviewSummary: "Pros: Pure driving joy, easy manual top. Cons: Tight cabin, noisy at highway speeds.", DriverAssistScore: 4, DriverAssistName: "i-Activsense®", DriverAssistLink: "https://www.mazdausa.com/why-mazda/safety", OffroadCapability: 2, Seats: 2},

		// Electric
		{Make: "Tesla", Model: "Model 3", Year: 2024, Class: "Sedan", Price: 40000, CityMPG: 130, HwyMPG: 138, FuelType: entities.FuelTypeElectric, ReliabilityScore: 7.0, LuxuryScore: 7, FunScore: 8.0, Features: "Autopilot, 15-inch Center Screen, Glass Roof, Dog Mode, Phone Key", CargoSpace: 19.8, RearLegroom: 35.2, Acceleration: 5.8, ReviewSummary: "Pros: Supercharger network, instant torque. Cons: Distracting screen-only controls.", DriverAssistScore: 9, DriverAssistName: "Autopilot / FSD Capability", DriverAssistLink: "https://www.tesla.com/autopilot", OffroadCapability: 3, Seats: 5, RangeMiles: 272},
		{Make: "Lucid", Model: "Air", Year: 2024, Class: "Sedan", Price: 78000, CityMPG: 135, HwyMPG: 140, FuelType: entities.FuelTypeElectric, ReliabilityScore: 6.0, LuxuryScore: 9, FunScore: 8.5, Features: "34-inch Glass Cockpit, DreamDrive Pro, Massage Seats, Frunk", CargoSpace: 32.0, RearLegroom: 41.0, Acceleration: 3.0, ReviewSummary: "Pros: Incredible range and power, spacious. Cons: Software bugs, low roofline entry.", DriverAssistScore: 8, DriverAssistName: "DreamDrive™ Pro", DriverAssistLink: "https://www.lucidmotors.com/dreamdrive", OffroadCapability: 3, Seats: 5, RangeMiles: 410},
		{Make: "Hyundai", Model: "Ioniq 5", Year: 2024, Class: "SUV", Price: 42000, CityMPG: 132, HwyMPG: 110, FuelType: entities.FuelTypeElectric, ReliabilityScore: 8.0, LuxuryScore: 7, FunScore: 7.0, Features: "Vehicle-to-Load (V2L), Relaxion Reclining Seats, Sliding Center Console", CargoSpace: 27.2, RearLegroom: 39.4, Acceleration: 5.0, ReviewSummary: "Pros: Fast charging capability, retro design. Cons: No rear wiper, small frunk.", DriverAssistScore: 7, DriverAssistName: "Highway Driving Assist 2", DriverAssistLink: "https://www.hyundaiusa.com/us/en/safety", OffroadCapability: 4, Seats: 5, RangeMiles: 266},
		{Make: "Rivian", Model: "R1S", Year: 2024, Class: "SUV", Price: 78000, CityMPG: 73, HwyMPG: 65, FuelType: entities.FuelTypeElectric, ReliabilityScore: 6.5, LuxuryScore: 9, FunScore: 7.5, Features: "Camp Mode, Pet Mode, Portable Speaker, Air Suspension", CargoSpace: 104.0, RearLegroom: 36.6, Acceleration: 3.0, ReviewSummary: "Pros: Legit off-road chops, sports car speed. Cons: Firm ride on pavement.", DriverAssistScore: 8, DriverAssistName: "Rivian Driver+", DriverAssistLink: "https://rivian.com/experience/technology", OffroadCapability: 10, Seats: 7, RangeMiles: 316},
		{Make: "Rivian", Model: "R1T", Year: 2024, Class: "Pickup", Price: 75000, CityMPG: 70, HwyMPG: 65, FuelType: entities.FuelTypeElectric, ReliabilityScore: 6.0, LuxuryScore: 9, FunScore: 7.5, Features: "Gear Tunnel, Built-in Air Compressor, Hydraulic Roll Control", CargoSpace: 62.0, RearLegroom: 36.6, Acceleration: 3.0, ReviewSummary: "Pros: Clever storage (Gear Tunnel), incredible performance. Cons: Service center availability.", DriverAssistScore: 8, DriverAssistName: "Rivian Driver+", DriverAssistLink: "https://rivian.com/experience/technology", OffroadCapability: 10, Seats: 5, RangeMiles: 328},
		{Make: "Chevrolet", Model: "Bolt EV", Year: 2023, Class: "Hatchback", Price: 27000, CityMPG: 120, HwyMPG: 110, FuelType: entities.FuelTypeElectric, ReliabilityScore: 7.0, LuxuryScore: 3, FunScore: 6.0, Features: "Super Cruise, Sport Mode, Regen on Demand Paddle", CargoSpace: 16.6, RearLegroom: 36.0, Acceleration: 6.5, ReviewSummary: "Pros: Great value EV, punchy acceleration. Cons: Slow DC fast charging speeds.", DriverAssistScore: 8, DriverAssistName: "Super Cruise™", DriverAssistLink: "https://www.chevrolet.com/electric/super-cruise", OffroadCapability: 2, Seats: 5, RangeMiles: 259},
	}
}
