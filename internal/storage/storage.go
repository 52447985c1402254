// Package storage is the HTTP evaluation service: users register and log
// in, submit expressions and poll for results. Expressions are persisted
// in sqlite and evaluated by background workers.
package storage

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"

	"github.com/avdeyev/calckit/internal/config"
	queue "github.com/avdeyev/calckit/internal/datastructs"
	"github.com/gorilla/mux"
)

type storage struct {
	router *mux.Router
	db     *sql.DB
	key    []byte

	exprQueue *queue.Queue[pendingExpr]
}

type pendingExpr struct {
	id   int64
	expr string
}

func newStorage(db *sql.DB, cfg config.Config) *storage {
	s := &storage{
		db:        db,
		key:       []byte(cfg.SigningKey),
		exprQueue: queue.NewQueue[pendingExpr](cfg.QueueSize),
	}

	// background evaluation workers
	for i := 0; i < cfg.Workers; i++ {
		go s.evalExpressions()
	}

	r := mux.NewRouter()
	// user handle
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	// expr handle
	r.HandleFunc("/add_expr", s.handleAddExpression).Methods("POST")
	r.HandleFunc("/get_result", s.handleGetResult).Methods("GET")

	s.router = r

	return s
}

func (s *storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func GetServer(cfg config.Config, db *sql.DB) *http.Server {
	var _addr string
	if strings.Contains(cfg.Host, "localhost") || strings.Contains(cfg.Host, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", cfg.Port)
	} else {
		_addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	}
	return &http.Server{
		Addr:    _addr,
		Handler: newStorage(db, cfg),
	}
}

// CreateTables sets up the sqlite schema the service needs.
func CreateTables(ctx context.Context, db *sql.DB) error {
	const (
		usersTable = `
		CREATE TABLE IF NOT EXISTS users(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT,
			hashedPassword TEXT NOT NULL
		);`

		expressionsTable = `
		CREATE TABLE IF NOT EXISTS expressions(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hash INTEGER NOT NULL,
			expression TEXT,
			userId INTEGER NOT NULL,
			status TEXT,
			result TEXT,

			FOREIGN KEY (userId) REFERENCES users (id)
		);`
	)

	if _, err := db.ExecContext(ctx, usersTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, expressionsTable); err != nil {
		return err
	}
	return nil
}

type state string
type exprHash int

func getHash(line string) exprHash {
	h := sha1.New()
	h.Write([]byte(line))
	return exprHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

const (
	_           state = ""
	has_error   state = "error"
	in_progress state = "in progress"
	ok          state = "ok"
)

type expressionState struct {
	State  state       `json:"state"`
	Result interface{} `json:"result"`
}
