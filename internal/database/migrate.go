package database

// schema crée les tables Postgres si elles n'existent pas encore.
// Les ids sont des UUID générés côté application et stockés en TEXT.
const schema = `
CREATE TABLE IF NOT EXISTS exercises (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL UNIQUE,
	muscle_group TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_exercises_muscle_group ON exercises (muscle_group, name);

CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS profiles (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	age        INT NOT NULL CHECK (age > 0),
	weight     DOUBLE PRECISION NOT NULL CHECK (weight > 0),
	height     DOUBLE PRECISION NOT NULL CHECK (height > 0),
	imc        DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workouts (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL CHECK (char_length(name) >= 3),
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id           TEXT PRIMARY KEY,
	workout_id   TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	exercise_id  TEXT NOT NULL REFERENCES exercises(id) ON DELETE RESTRICT,
	position     INT NOT NULL,
	sets         INT NOT NULL CHECK (sets >= 1),
	reps         TEXT NOT NULL CHECK (reps <> ''),
	rest_seconds INT NOT NULL CHECK (rest_seconds >= 0)
);
CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises (workout_id, position);
`
