package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	model "github.com/MassBabyGeek/TrilhaVital-backend/internal/models"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/scanner"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implémente Store avec un pool pgx
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres ouvre le pool et vérifie la connexion
func ConnectPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	cfg.MaxConns = 4

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Success("Connected to PostgreSQL")
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) UpsertExercises(ctx context.Context, exercises []model.Exercise) (int, error) {
	batch := &pgx.Batch{}
	for _, ex := range exercises {
		batch.Queue(`
			INSERT INTO exercises (id, name, muscle_group, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING
		`, uuid.NewString(), ex.Name, ex.MuscleGroup, ex.Description)
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, classify(fmt.Errorf("upsert exercises: %w", err))
	}

	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, muscle_group, description
		FROM exercises
		ORDER BY muscle_group ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []model.Exercise{}
	for rows.Next() {
		ex, err := scanner.ScanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}

// querier est satisfait par le pool et par une transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const userWithProfileQuery = `
	SELECT
		u.id, u.name, u.email, u.created_at, u.updated_at,
		p.id, p.age, p.weight, p.height, p.imc, p.created_at, p.updated_at
	FROM users u
	LEFT JOIN profiles p ON p.user_id = u.id
	WHERE u.email = $1
`

func findUserPg(ctx context.Context, q querier, email string) (*model.User, error) {
	user, err := scanner.ScanUserWithProfile(q.QueryRow(ctx, userWithProfileQuery, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findUserPg(ctx, s.pool, email)
}

func (s *PostgresStore) UpsertProfile(ctx context.Context, email string, in model.ProfileInput) (*model.User, error) {
	var user *model.User
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var userID string
		err := tx.QueryRow(ctx, `
			INSERT INTO users (id, name, email, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
			RETURNING id
		`, uuid.NewString(), in.Name, email).Scan(&userID)
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (id, user_id, age, weight, height, imc, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			ON CONFLICT (user_id) DO UPDATE SET
				age = EXCLUDED.age,
				weight = EXCLUDED.weight,
				height = EXCLUDED.height,
				imc = EXCLUDED.imc,
				updated_at = NOW()
		`, uuid.NewString(), userID, in.Age, in.Weight, in.Height, in.IMC)
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		user, err = findUserPg(ctx, tx, email)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (s *PostgresStore) CreateWorkout(ctx context.Context, email string, in model.CreateWorkoutInput) (*model.Workout, error) {
	var created *model.Workout
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		user, err := findUserPg(ctx, tx, email)
		if err != nil {
			return err
		}

		wanted := in.ExerciseIDs()
		// array_agg est renvoyé en texte ("{a,b}") pour être décodé par pq.Array
		found, err := scanner.ScanIDs(tx.QueryRow(ctx,
			`SELECT array_agg(id)::text FROM exercises WHERE id = ANY($1::text[])`, wanted))
		if err != nil {
			return fmt.Errorf("check exercises: %w", err)
		}
		if missing := missingIDs(wanted, found); len(missing) > 0 {
			return unknownExercises(missing)
		}

		workout := newWorkout(user.ID, in)
		_, err = tx.Exec(ctx, `
			INSERT INTO workouts (id, name, user_id, created_at) VALUES ($1, $2, $3, $4)
		`, workout.ID, workout.Name, workout.UserID, workout.CreatedAt)
		if err != nil {
			return fmt.Errorf("create workout: %w", err)
		}

		rows := make([][]any, 0, len(workout.WorkoutExercises))
		for _, we := range workout.WorkoutExercises {
			rows = append(rows, []any{we.ID, we.WorkoutID, we.ExerciseID, we.Position, we.Sets, we.Reps, we.RestSeconds})
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"workout_exercises"},
			[]string{"id", "workout_id", "exercise_id", "position", "sets", "reps", "rest_seconds"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("create workout exercises: %w", err)
		}

		created, err = loadWorkoutPg(ctx, tx, workout.ID, workout.UserID)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

func (s *PostgresStore) ListWorkouts(ctx context.Context, email string) ([]model.Workout, error) {
	user, err := findUserPg(ctx, s.pool, email)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, user_id, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	workouts := []model.Workout{}
	index := map[string]int{}
	for rows.Next() {
		w, err := scanner.ScanWorkout(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		index[w.ID] = len(workouts)
		workouts = append(workouts, *w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	ids := make([]string, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	items, err := workoutExercises(ctx, s.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, we := range items {
		i := index[we.WorkoutID]
		workouts[i].WorkoutExercises = append(workouts[i].WorkoutExercises, we)
	}
	return workouts, nil
}

func (s *PostgresStore) GetWorkout(ctx context.Context, email, id string) (*model.Workout, error) {
	user, err := findUserPg(ctx, s.pool, email)
	if err != nil {
		return nil, err
	}
	return loadWorkoutPg(ctx, s.pool, id, user.ID)
}

func loadWorkoutPg(ctx context.Context, q querier, id, userID string) (*model.Workout, error) {
	workout, err := scanner.ScanWorkout(q.QueryRow(ctx, `
		SELECT id, name, user_id, created_at FROM workouts WHERE id = $1 AND user_id = $2
	`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load workout: %w", err)
	}

	items, err := workoutExercises(ctx, q, []string{workout.ID})
	if err != nil {
		return nil, err
	}
	workout.WorkoutExercises = append(workout.WorkoutExercises, items...)
	return workout, nil
}

func workoutExercises(ctx context.Context, q querier, workoutIDs []string) ([]model.WorkoutExercise, error) {
	rows, err := q.Query(ctx, `
		SELECT
			we.id, we.workout_id, we.exercise_id, we.position, we.sets, we.reps, we.rest_seconds,
			e.id, e.name, e.muscle_group, e.description
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = ANY($1::text[])
		ORDER BY we.workout_id, we.position ASC
	`, workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("load workout exercises: %w", err)
	}
	defer rows.Close()

	var items []model.WorkoutExercise
	for rows.Next() {
		we, err := scanner.ScanWorkoutExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		items = append(items, *we)
	}
	return items, rows.Err()
}

// classify convertit les violations de contraintes (SQLSTATE classe 23) en ValidationError
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23" {
		return &ValidationError{Message: pgErr.Message, Err: err}
	}
	return err
}
