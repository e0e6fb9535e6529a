package db

const schema = `
-- Shows table
CREATE TABLE IF NOT EXISTS shows (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL DEFAULT 0,
    title TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    description_format TEXT NOT NULL DEFAULT '',
    seasons INTEGER NOT NULL DEFAULT 0,
    updated TEXT NOT NULL DEFAULT ''
);

-- Genre label table
CREATE TABLE IF NOT EXISTS genres (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL
);

-- Ordered category list per show; genre_id is NULL for resolved names
CREATE TABLE IF NOT EXISTS show_genres (
    show_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    genre_id INTEGER,
    genre_name TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (show_id, position),
    FOREIGN KEY (show_id) REFERENCES shows(id)
);

-- Season details per show
CREATE TABLE IF NOT EXISTS seasons (
    show_id TEXT NOT NULL,
    number INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    episodes INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (show_id, number),
    FOREIGN KEY (show_id) REFERENCES shows(id)
);

CREATE INDEX IF NOT EXISTS idx_shows_position ON shows(position);
`
