package homework

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func TestCheckResponse_Valid(t *testing.T) {
	payload := decode(t, `{
    "homeworks": [
        {"id": 124, "status": "rejected", "homework_name": "username__hw_python_oop.zip", "reviewer_comment": "Код не по PEP8"},
        {"id": 123, "status": "approved", "homework_name": "username__hw_test.zip"}
    ],
    "current_date": 1581804979
}`)

	records, err := CheckResponse(payload)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "rejected", records[0][FieldStatus])
	assert.Equal(t, "username__hw_test.zip", records[1][FieldName])
}

func TestCheckResponse_EmptyList(t *testing.T) {
	records, err := CheckResponse(decode(t, `{"homeworks": []}`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCheckResponse_NotAnObject(t *testing.T) {
	for _, body := range []string{`[]`, `[{"homeworks": []}]`, `"homeworks"`, `42`, `true`, `null`} {
		_, err := CheckResponse(decode(t, body))
		assert.ErrorIs(t, err, ErrUnexpectedShape, "payload %s", body)
	}
}

func TestCheckResponse_MissingKey(t *testing.T) {
	_, err := CheckResponse(decode(t, `{"current_date": 1581804979}`))
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = CheckResponse(map[string]any{})
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestCheckResponse_WrongFieldType(t *testing.T) {
	for _, body := range []string{`{"homeworks": {}}`, `{"homeworks": "x"}`, `{"homeworks": null}`, `{"homeworks": 1}`} {
		_, err := CheckResponse(decode(t, body))
		assert.ErrorIs(t, err, ErrWrongFieldType, "payload %s", body)
	}
}

func TestCheckResponse_ItemNotAnObject(t *testing.T) {
	_, err := CheckResponse(decode(t, `{"homeworks": ["approved"]}`))
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}
