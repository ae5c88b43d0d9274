package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList is a []string stored as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// AnswerValue holds a submitted answer, which arrives on the wire as either
// a single string or an array of strings.
type AnswerValue struct {
	Values []string
	Multi  bool
}

func SingleAnswer(s string) AnswerValue {
	return AnswerValue{Values: []string{s}}
}

func MultiAnswer(values ...string) AnswerValue {
	return AnswerValue{Values: values, Multi: true}
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Values = []string{s}
		a.Multi = false
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		a.Values = list
		a.Multi = true
		return nil
	}
	return errors.New("answer must be a string or an array of strings")
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.Multi {
		return json.Marshal(a.Values)
	}
	if len(a.Values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.Values[0])
}

// QuestionAnswer is one respondent answer inside an attempt's answers column.
type QuestionAnswer struct {
	QuestionID uint        `json:"questionId"`
	UserAnswer AnswerValue `json:"userAnswer"`
	IsCorrect  bool        `json:"isCorrect"`
}

// QuestionAnswerList is a []QuestionAnswer stored as a jsonb column.
type QuestionAnswerList []QuestionAnswer

func (l QuestionAnswerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *QuestionAnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into QuestionAnswerList", value)
	}
}
