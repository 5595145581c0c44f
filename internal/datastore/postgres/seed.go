package postgres

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	"github.com/go-faker/faker/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedColleges = []string{
	"State University",
	"City College",
	"Tech Institute",
	"Liberal Arts College",
	"Community College",
}

var seedMajors = []string{
	"Computer Science",
	"Biology",
	"Economics",
	"Psychology",
	"Mechanical Engineering",
	"English Literature",
}

// SeedDemoData resets the database and populates it with demo users,
// swipes and the matches implied by mutual likes. Every 3rd swipe is
// forced mutual so the demo data always contains matches.
func SeedDemoData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, table := range []string{"messages", "matches", "swipes", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users := make([]entity.User, 0, 20)
	for i := 1; i <= 20; i++ {
		gender, interestedIn := "male", "female"
		if i > 10 {
			gender, interestedIn = interestedIn, gender
		}

		dob := time.Now().AddDate(-(18 + r.Intn(7)), -r.Intn(12), 0)
		user := entity.User{
			Email:          fmt.Sprintf("user%d@example.edu", i),
			Password:       string(hash),
			FirstName:      faker.FirstName(),
			LastName:       faker.LastName(),
			College:        seedColleges[r.Intn(len(seedColleges))],
			Major:          seedMajors[r.Intn(len(seedMajors))],
			GraduationYear: time.Now().Year() + r.Intn(4),
			DateOfBirth:    &dob,
			Gender:         gender,
			InterestedIn:   entity.StringList{interestedIn},
			Bio:            faker.Sentence(),
			Interests:      entity.StringList{"music", "hiking"},
			Active:         true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users.", len(users))

	swipeUpsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"action", "active", "updated_at"}),
	}

	counter := 0
	for _, swiper := range users {
		for j := 0; j < 8; j++ {
			swiped := users[r.Intn(len(users))]
			if swiped.ID == swiper.ID || swiped.Gender == swiper.Gender {
				continue
			}

			action := entity.ActionLike
			if r.Intn(100) >= 70 {
				action = entity.ActionDislike
			}

			mutual := counter%3 == 0
			if mutual {
				action = entity.ActionLike
				recip := entity.Swipe{SwiperID: swiped.ID, SwipedID: swiper.ID, Action: entity.ActionLike, Active: true}
				if err := db.Clauses(swipeUpsert).Create(&recip).Error; err != nil {
					return fmt.Errorf("failed to seed swipe: %w", err)
				}
			}

			swipe := entity.Swipe{SwiperID: swiper.ID, SwipedID: swiped.ID, Action: action, Active: true}
			if err := db.Clauses(swipeUpsert).Create(&swipe).Error; err != nil {
				return fmt.Errorf("failed to seed swipe: %w", err)
			}

			if mutual {
				u1, u2 := entity.NormalizePair(swiper.ID, swiped.ID)
				match := entity.Match{
					User1ID:   u1,
					User2ID:   u2,
					Status:    entity.MatchMatched,
					MatchedAt: time.Now(),
					Active:    true,
				}
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&match).Error; err != nil {
					return fmt.Errorf("failed to seed match: %w", err)
				}
			}
			counter++
		}
	}
	log.Printf("Seeded %d swipes.", counter)

	return nil
}
