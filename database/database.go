package database

import (
	"fmt"

	"api/config"
	"api/models"
	"api/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection, migrates the models and populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GameType{},
		&models.GameRevision{},
		&models.LoginAttempt{},
		&models.VisitLog{},
		&models.GameSuggestion{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Populate populates the database with default values if needed
func Populate() {
	var countUser int64

	// Create the default admin account if there is no user at all
	DB.Model(&models.User{}).Count(&countUser)
	if countUser == 0 {
		password := config.DefaultAdminPassword
		if password == "" {
			log.Warn("DEFAULT_ADMIN_PASSWORD not set, admin account not created")
		} else {
			hashed, err := utils.HashPassword(password)
			if err != nil {
				log.Fatal("failed to hash default admin password: ", err)
			}

			user := models.User{
				Username:     config.DefaultAdminUsername,
				PasswordHash: hashed,
				Admin:        true,
			}
			DB.Create(&user)
			log.Println("Default admin user created")
		}
	}

	// Optionally seed a sample game so a fresh install is not empty
	if config.SeedSampleData == "true" {
		var countGame int64
		DB.Model(&models.Game{}).Count(&countGame)
		if countGame == 0 {
			DB.Create(&sampleGame)
			log.Println("Sample game created")
		}
	}
}

var sampleGame = models.Game{
	Name:        "Pictionary",
	Type:        "Party Game",
	Difficulty:  models.DifficultyMedium,
	MinPlayers:  4,
	MaxPlayers:  10,
	MinAge:      8,
	MinDuration: 20,
	Materials:   []string{"Paper", "Pencils", "Timer", "Word cards"},
	Explanation: "Draw pictures to help your team guess a word or phrase within the time limit.",
	Rules:       "1. Divide into teams. 2. One player draws without speaking or gesturing. 3. Their team must guess the word before time runs out. 4. No letters or numbers allowed in drawings.",
	ScoreCalculation: "One point per correct guess. First team to reach 20 points wins.",
	Example:          "One player draws a cat without speaking, while teammates try to guess 'cat' before time runs out.",
	Expansions:       []string{"Pictionary Ultimate Edition", "Pictionary Junior"},
	DrinkingRules:    "When a team fails to guess correctly, each team member takes a sip.",
	CreatedBy:        "seed",
}
