package storage

import (
	"database/sql"
	"strconv"

	"github.com/dgrijalva/jwt-go"
)

func (s *storage) validateToken(bearerToken string) (*jwt.Token, error) {
	token, err := jwt.Parse(bearerToken, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	return token, err
}

func (s *storage) getUserId(bearerToken string) (int, error) {
	token, err := s.validateToken(bearerToken)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.NewValidationError("token is not valid", jwt.ValidationErrorClaimsInvalid)
	}

	user := token.Claims.(jwt.MapClaims)
	id, err := strconv.Atoi(user["id"].(string))
	if err != nil {
		return 0, err
	}
	return id, nil
}

func storeExpressionState(db *sql.DB, status state, result interface{}, userId int, expr string) (int64, error) {
	var q string = `
	INSERT INTO expressions (status, result, userId, hash, expression) VALUES ($1, $2, $3, $4, $5)
	`

	res, err := db.Exec(q, status, result, userId, getHash(expr), expr)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func updateExpressionState(db *sql.DB, status state, result interface{}, id int64) error {
	var q string = `
	UPDATE expressions SET status = $1, result = $2 WHERE id = $3
	`

	_, err := db.Exec(q, status, result, id)
	return err
}

func checkExpressionExists(db *sql.DB, hash exprHash, userId int) (int64, error) {
	var q string = `
	SELECT id FROM expressions WHERE hash = $1 AND userId = $2
	`

	var id int64
	err := db.QueryRow(q, hash, userId).Scan(&id)
	return id, err
}

func getExpressionState(db *sql.DB, id int) (expressionState, error) {
	var q string = `
	SELECT status, result FROM expressions WHERE id = $1`
	var (
		st     state
		result sql.NullString
	)
	if err := db.QueryRow(q, id).Scan(&st, &result); err != nil {
		return expressionState{}, err
	}
	return expressionState{State: st, Result: result.String}, nil
}
