package core

import (
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "String field",
			field: Field{Type: StringType, Str: "hello"},
			want:  "hello",
		},
		{
			name:  "Int64 field",
			field: Field{Type: Int64Type, Int64: 1234567890},
			want:  "1234567890",
		},
		{
			name:  "Bool field (true)",
			field: Field{Type: BoolType, Int64: 1},
			want:  "true",
		},
		{
			name:  "Float64 field",
			field: Field{Type: Float64Type, Float64: 3.14},
			want:  "3.14",
		},
		{
			name:  "Duration field",
			field: Field{Type: DurationType, Int64: int64(5 * time.Second)},
			want:  "5s",
		},
		{
			name:  "Any field",
			field: Field{Type: AnyType, Any: []int{1, 2}},
			want:  "[1 2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendFields(t *testing.T) {
	got := AppendFields("request", []Field{
		{Key: "method", Type: StringType, Str: "GET"},
		{Key: "status", Type: Int64Type, Int64: 200},
	})
	if want := "request method=GET status=200"; got != want {
		t.Errorf("AppendFields() = %q, want %q", got, want)
	}

	if got := AppendFields("bare", nil); got != "bare" {
		t.Errorf("AppendFields() with no fields = %q", got)
	}
}
