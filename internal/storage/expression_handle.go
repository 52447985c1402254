package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/avdeyev/calckit/internal/eval"
)

func (s *storage) handleAddExpression(w http.ResponseWriter, r *http.Request) {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	bearerToken := r.Header.Get("Authorization")
	if bearerToken == "" {
		http.Error(w, "unknown user", http.StatusBadRequest)
		return
	}
	userId, err := s.getUserId(bearerToken)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_expr := struct {
		Value string `json:"expr"`
	}{}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&_expr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if id, err := checkExpressionExists(s.db, getHash(_expr.Value), userId); err == nil {
		w.Write([]byte(strconv.FormatInt(id, 10)))
		return
	}

	id, err := storeExpressionState(s.db, in_progress, nil, userId, _expr.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.exprQueue.Enqueue(pendingExpr{id: id, expr: _expr.Value}); err != nil {
		updateExpressionState(s.db, has_error, err.Error(), id)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func (s *storage) handleGetResult(w http.ResponseWriter, r *http.Request) {
	strId := r.URL.Query().Get("id")
	id, err := strconv.Atoi(strId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := getExpressionState(s.db, id)
	if err != nil {
		http.Error(w, fmt.Sprintf("no expr with id %d", id), http.StatusBadRequest)
		return
	}
	data, err := json.Marshal(st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

// evalExpressions is the worker loop: take a pending expression off the
// queue, evaluate it in-process and write the outcome back.
func (s *storage) evalExpressions() {
	for {
		p := s.exprQueue.Dequeue()

		res, err := eval.Evaluate(p.expr)
		if err != nil {
			if err := updateExpressionState(s.db, has_error, err.Error(), p.id); err != nil {
				log.Printf("update expression %d: %v", p.id, err)
			}
			continue
		}
		value := strconv.FormatFloat(res, 'g', -1, 64)
		if err := updateExpressionState(s.db, ok, value, p.id); err != nil {
			log.Printf("update expression %d: %v", p.id, err)
		}
	}
}
