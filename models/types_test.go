package models

import (
	"encoding/json"
	"testing"
)

func TestAnswerValueUnmarshal(t *testing.T) {
	var single AnswerValue
	if err := json.Unmarshal([]byte(`"Paris"`), &single); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single.Multi || len(single.Values) != 1 || single.Values[0] != "Paris" {
		t.Fatalf("unexpected single answer: %+v", single)
	}

	var multi AnswerValue
	if err := json.Unmarshal([]byte(`["red","blue"]`), &multi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !multi.Multi || len(multi.Values) != 2 {
		t.Fatalf("unexpected multi answer: %+v", multi)
	}

	var bad AnswerValue
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Fatal("expected error for non-string answer payload")
	}
}

func TestAnswerValueMarshalKeepsWireShape(t *testing.T) {
	single, _ := json.Marshal(SingleAnswer("Paris"))
	if string(single) != `"Paris"` {
		t.Fatalf("expected string on the wire, got %s", single)
	}

	multi, _ := json.Marshal(MultiAnswer("red", "blue"))
	if string(multi) != `["red","blue"]` {
		t.Fatalf("expected array on the wire, got %s", multi)
	}
}

func TestStringListScan(t *testing.T) {
	var list StringList
	if err := list.Scan([]byte(`["a","b"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[1] != "b" {
		t.Fatalf("unexpected list: %v", list)
	}

	if err := list.Scan(42); err == nil {
		t.Fatal("expected error scanning unsupported type")
	}
}
