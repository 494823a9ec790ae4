package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, 400, Status(InvalidInput("bad")))
	assert.Equal(t, 404, Status(NotFound("missing")))
	assert.Equal(t, 404, Status(LocationNotFound("nowhere")))
	assert.Equal(t, 500, Status(QueryExecution(errors.New("boom"))))
	assert.Equal(t, 500, Status(errors.New("unclassified")))
}

func TestQueryExecutionPreservesCause(t *testing.T) {
	cause := errors.New("relation does not exist")
	err := QueryExecution(cause)
	assert.True(t, errors.Is(err, ErrQueryExecution))
	assert.Contains(t, err.Error(), "relation does not exist")
}

func TestConstructorsWrapSentinels(t *testing.T) {
	assert.True(t, errors.Is(InvalidInput("x"), ErrInvalidInput))
	assert.True(t, errors.Is(NotFound("x"), ErrNotFound))
	assert.True(t, errors.Is(LocationNotFound("x"), ErrLocationNotFound))
}
