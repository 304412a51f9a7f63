package archive

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  started datetime,
  finished datetime,
  white varchar not null default '',
  black varchar not null default '',
  start_fen text not null,
  final_fen text not null,
  final_hash text not null default '',
  moves text not null default '',
  plies int not null default 0,
  result text not null default '*'
)`

const createHashIndex = `
CREATE INDEX IF NOT EXISTS games_final_hash ON games (final_hash)
`

const insertGame = `
INSERT INTO games (started, finished, white, black, start_fen, final_fen, final_hash, moves, plies, result)
VALUES (:started, :finished, :white, :black, :start_fen, :final_fen, :final_hash, :moves, :plies, :result)
`

const selectGame = `SELECT * FROM games WHERE id = ?`

const selectRecent = `
SELECT * FROM games
ORDER BY finished DESC, id DESC
LIMIT ?
`

const selectByHash = `
SELECT * FROM games
WHERE final_hash = ?
ORDER BY id
`

const countGames = `SELECT count(*) FROM games`
