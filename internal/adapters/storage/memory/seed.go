package memory

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"star-dog-walker/internal/domain/dogs"
	"star-dog-walker/internal/domain/notifications"
	"star-dog-walker/internal/domain/users"
	"star-dog-walker/internal/domain/walks"
)

// SeedDemo carga el dataset de demo: tres cuentas (password "password"),
// tres perros y un historial corto de walks con un journal completo.
// Los IDs son numéricos cortos a propósito: "2" es el walker default
// que usan las reservas de owners.
func SeedDemo(ctx context.Context, usersRepo users.Repository, dogsRepo dogs.Repository, walksRepo walks.Repository, notifsRepo notifications.Repository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), 10)
	if err != nil {
		return err
	}

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seedUsers := []users.User{
		{
			ID:           "1",
			Email:        "owner@example.com",
			PasswordHash: string(hash),
			Name:         "Sophie Williams",
			Role:         users.RoleOwner,
			Phone:        "+44 7123 456789",
			Address:      "Adamsdown, Cardiff",
			CreatedAt:    t0,
			UpdatedAt:    t0,
		},
		{
			ID:           "2",
			Email:        "walker@stardogwalker.com",
			PasswordHash: string(hash),
			Name:         "Sarah Jenkins",
			Role:         users.RoleWalker,
			Phone:        "+44 7987 654321",
			Address:      "Splott, Cardiff",
			CreatedAt:    t0,
			UpdatedAt:    t0,
		},
		{
			ID:           "3",
			Email:        "emma@example.com",
			PasswordHash: string(hash),
			Name:         "Emma Davies",
			Role:         users.RoleOwner,
			Phone:        "+44 7456 123789",
			Address:      "Splott, Cardiff",
			CreatedAt:    t0.AddDate(0, 0, 2),
			UpdatedAt:    t0.AddDate(0, 0, 2),
		},
	}
	for _, u := range seedUsers {
		if err := usersRepo.Create(ctx, u); err != nil {
			return err
		}
	}

	age3, age2, age4 := 3, 2, 4
	w25, w20, w12 := 25.0, 20.0, 12.0

	seedDogs := []dogs.Dog{
		{
			ID:                  "1",
			OwnerID:             "1",
			Name:                "Max",
			Breed:               "Golden Retriever",
			Age:                 &age3,
			Weight:              &w25,
			Color:               "Golden",
			MicrochipNumber:     "GB123456789",
			VetName:             "Cardiff Veterinary Centre",
			VetPhone:            "+44 29 2012 3456",
			Medications:         "None",
			Allergies:           "None known",
			BehaviorNotes:       "Friendly with other dogs, afraid of bicycles, loves puddles and playing fetch.",
			EmergencyContact:    "Sophie Williams - +44 7123 456789",
			FeedingInstructions: "Fed twice daily, no treats during walks",
			Photo:               "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=400",
			CreatedAt:           t0,
			UpdatedAt:           t0,
		},
		{
			ID:                  "2",
			OwnerID:             "1",
			Name:                "Bella",
			Breed:               "Border Collie",
			Age:                 &age2,
			Weight:              &w20,
			Color:               "Black and White",
			MicrochipNumber:     "GB987654321",
			VetName:             "Cardiff Veterinary Centre",
			VetPhone:            "+44 29 2012 3456",
			Medications:         "None",
			Allergies:           "None known",
			BehaviorNotes:       "Very energetic, good with other dogs, excellent recall.",
			EmergencyContact:    "Sophie Williams - +44 7123 456789",
			FeedingInstructions: "Fed twice daily, loves training treats",
			Photo:               "https://images.pexels.com/photos/551628/pexels-photo-551628.jpeg?auto=compress&cs=tinysrgb&w=300",
			CreatedAt:           t0.AddDate(0, 0, 1),
			UpdatedAt:           t0.AddDate(0, 0, 1),
		},
		{
			ID:                  "3",
			OwnerID:             "3",
			Name:                "Charlie",
			Breed:               "French Bulldog",
			Age:                 &age4,
			Weight:              &w12,
			Color:               "Fawn",
			MicrochipNumber:     "GB456789123",
			VetName:             "Adamsdown Vet Clinic",
			VetPhone:            "+44 29 2034 5678",
			Medications:         "None",
			Allergies:           "Sensitive to heat",
			BehaviorNotes:       "Calm temperament, prefers shorter walks, good with children.",
			EmergencyContact:    "Emma Davies - +44 7456 123789",
			FeedingInstructions: "Fed twice daily, no grain-based treats",
			Photo:               "https://images.pexels.com/photos/1805164/pexels-photo-1805164.jpeg?auto=compress&cs=tinysrgb&w=300",
			CreatedAt:           t0.AddDate(0, 0, 2),
			UpdatedAt:           t0.AddDate(0, 0, 2),
		},
	}
	for _, d := range seedDogs {
		if err := dogsRepo.Create(ctx, d); err != nil {
			return err
		}
	}

	seedWalks := []walks.Walk{
		{
			ID:            "1",
			DogID:         "1",
			WalkerID:      "2",
			OwnerID:       "1",
			Date:          "2024-01-12",
			StartTime:     "14:00",
			EndTime:       "15:00",
			Duration:      60,
			Status:        walks.StatusCompleted,
			Route:         "Splott Park Loop",
			Weather:       "sunny",
			Notes:         "Max had a wonderful time today! We walked through Splott Park and he got to play with two other golden retrievers. He was particularly excited about the puddles from yesterday's rain and had a good splash. We practiced his recall training near the tennis courts and he did brilliantly. No issues with bicycles today - he's getting much more confident.",
			BehaviorNotes: "Very well behaved, friendly with other dogs, good recall",
			Photos: []string{
				"https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/1851164/pexels-photo-1851164.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			PickupAddress: "Splott Road, Cardiff",
			SpecialNotes:  "Afraid of bicycles, loves puddles",
			CreatedAt:     time.Date(2024, 1, 12, 13, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 12, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			DogID:         "2",
			WalkerID:      "2",
			OwnerID:       "1",
			Date:          "2024-01-10",
			StartTime:     "10:00",
			EndTime:       "10:45",
			Duration:      45,
			Status:        walks.StatusCompleted,
			Route:         "Adamsdown Streets",
			Weather:       "cloudy",
			Notes:         "Bella was full of energy today! We explored the quieter streets of Adamsdown and she got to meet several friendly neighbors. She was particularly interested in the local cats (from a respectful distance). Great recall and very well-behaved on the lead.",
			BehaviorNotes: "Excellent energy, good with people, curious about cats",
			Photos: []string{
				"https://images.pexels.com/photos/551628/pexels-photo-551628.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			PickupAddress: "Adamsdown, Cardiff",
			SpecialNotes:  "Very energetic, good with other dogs",
			CreatedAt:     time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			DogID:         "1",
			WalkerID:      "2",
			OwnerID:       "1",
			Date:          "2024-01-15",
			StartTime:     "14:00",
			EndTime:       "15:00",
			Duration:      60,
			Status:        walks.StatusConfirmed,
			Photos:        []string{},
			PickupAddress: "Splott Road, Cardiff",
			SpecialNotes:  "Afraid of bicycles, loves puddles",
			CreatedAt:     time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			DogID:         "3",
			WalkerID:      "2",
			OwnerID:       "3",
			Date:          "2024-01-17",
			StartTime:     "10:30",
			EndTime:       "11:15",
			Duration:      45,
			Status:        walks.StatusPending,
			Photos:        []string{},
			PickupAddress: "Splott Park area",
			SpecialNotes:  "Prefers shorter walks, sensitive to heat",
			CreatedAt:     time.Date(2024, 1, 14, 15, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 1, 14, 15, 0, 0, 0, time.UTC),
		},
	}
	for _, w := range seedWalks {
		if err := walksRepo.Create(ctx, w); err != nil {
			return err
		}
	}

	seedNotifs := []notifications.Notification{
		{
			ID:        "1",
			UserID:    "1",
			Type:      notifications.TypeSuccess,
			Title:     "Walk Completed",
			Message:   "Max's walk has been completed. Check out the photos!",
			Timestamp: time.Date(2024, 1, 12, 15, 30, 0, 0, time.UTC),
			Read:      false,
		},
		{
			ID:        "2",
			UserID:    "2",
			Type:      notifications.TypeInfo,
			Title:     "New Walk Request",
			Message:   "Charlie needs a walk on January 17th",
			Timestamp: time.Date(2024, 1, 14, 15, 0, 0, 0, time.UTC),
			Read:      false,
		},
	}
	for _, n := range seedNotifs {
		if err := notifsRepo.Create(ctx, n); err != nil {
			return err
		}
	}

	return nil
}
