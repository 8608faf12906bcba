package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteStore implémente Store avec gorm sur SQLite
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite ouvre (ou crée) la base SQLite désignée par dsn
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(withForeignKeys(dsn)), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// withForeignKeys active les clés étrangères, désactivées par défaut sur SQLite
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// ensureDirForSQLite crée le dossier parent du fichier SQLite si besoin
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&model.Exercise{}, &model.User{}, &model.Profile{},
		&model.Workout{}, &model.WorkoutExercise{},
	)
	if err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteStore) UpsertExercises(ctx context.Context, exercises []model.Exercise) (int, error) {
	db := s.db.WithContext(ctx)
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, ex := range exercises {
			ex.ID = uuid.NewString()
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&ex).Error
			if err != nil {
				return fmt.Errorf("upsert exercise %q: %w", ex.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, translate(err)
	}

	var count int64
	if err := db.Model(&model.Exercise{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return int(count), nil
}

func (s *SQLiteStore) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	exercises := []model.Exercise{}
	err := s.db.WithContext(ctx).
		Order("muscle_group ASC").
		Order("name ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findUser(s.db.WithContext(ctx), email)
}

func findUser(db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := db.Preload("Profile").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) UpsertProfile(ctx context.Context, email string, in model.ProfileInput) (*model.User, error) {
	var result *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, email)
		switch {
		case errors.Is(err, ErrNotFound):
			user = &model.User{ID: uuid.NewString(), Name: in.Name, Email: email}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user: %w", err)
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(user).Update("name", in.Name).Error; err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		}

		profile := model.Profile{
			ID:     uuid.NewString(),
			UserID: user.ID,
			Age:    in.Age,
			Weight: in.Weight,
			Height: in.Height,
			IMC:    in.IMC,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"age", "weight", "height", "imc", "updated_at"}),
		}).Create(&profile).Error
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		result, err = findUser(tx, email)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (s *SQLiteStore) CreateWorkout(ctx context.Context, email string, in model.CreateWorkoutInput) (*model.Workout, error) {
	var created *model.Workout
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, email)
		if err != nil {
			return err
		}

		wanted := in.ExerciseIDs()
		var found []string
		if err := tx.Model(&model.Exercise{}).Where("id IN ?", wanted).Pluck("id", &found).Error; err != nil {
			return fmt.Errorf("check exercises: %w", err)
		}
		if missing := missingIDs(wanted, found); len(missing) > 0 {
			return unknownExercises(missing)
		}

		workout := newWorkout(user.ID, in)
		if err := tx.Create(&workout).Error; err != nil {
			return fmt.Errorf("create workout: %w", err)
		}

		created, err = loadWorkout(tx, "id = ?", workout.ID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return created, nil
}

func (s *SQLiteStore) ListWorkouts(ctx context.Context, email string) ([]model.Workout, error) {
	db := s.db.WithContext(ctx)
	user, err := findUser(db, email)
	if err != nil {
		return nil, err
	}

	workouts := []model.Workout{}
	err = preloadExercises(db).
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *SQLiteStore) GetWorkout(ctx context.Context, email, id string) (*model.Workout, error) {
	db := s.db.WithContext(ctx)
	user, err := findUser(db, email)
	if err != nil {
		return nil, err
	}
	return loadWorkout(db, "id = ? AND user_id = ?", id, user.ID)
}

func loadWorkout(db *gorm.DB, query string, args ...interface{}) (*model.Workout, error) {
	var workout model.Workout
	err := preloadExercises(db).Where(query, args...).First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load workout: %w", err)
	}
	return &workout, nil
}

func preloadExercises(db *gorm.DB) *gorm.DB {
	return db.
		Preload("WorkoutExercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("WorkoutExercises.Exercise")
}

// newWorkout construit l'entraînement et ses lignes dans l'ordre soumis
func newWorkout(userID string, in model.CreateWorkoutInput) model.Workout {
	workout := model.Workout{
		ID:               uuid.NewString(),
		Name:             in.Name,
		UserID:           userID,
		CreatedAt:        time.Now().UTC(),
		WorkoutExercises: make([]model.WorkoutExercise, 0, len(in.Exercises)),
	}
	for i, ex := range in.Exercises {
		rest := 0
		if ex.RestSeconds != nil {
			rest = *ex.RestSeconds
		}
		workout.WorkoutExercises = append(workout.WorkoutExercises, model.WorkoutExercise{
			ID:          uuid.NewString(),
			WorkoutID:   workout.ID,
			ExerciseID:  ex.ExerciseID,
			Position:    i,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestSeconds: rest,
		})
	}
	return workout
}

// translate convertit les erreurs de contrainte gorm en ValidationError
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ValidationError{Message: "registro duplicado", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ValidationError{Message: "referência inválida", Err: err}
	default:
		return err
	}
}
