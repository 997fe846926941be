package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-clientes/internal/domain/entity"
)

func TestFullName(t *testing.T) {
	c := &entity.Customer{FirstName: "Ana", LastName: "Gómez Pérez"}
	assert.Equal(t, "Ana Gómez Pérez", c.FullName())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, entity.ValidStatus(entity.StatusPending))
	assert.True(t, entity.ValidStatus(entity.StatusPaid))
	assert.True(t, entity.ValidStatus(entity.StatusCancelled))
	assert.False(t, entity.ValidStatus(""))
	assert.False(t, entity.ValidStatus("Vencida"))
	assert.False(t, entity.ValidStatus("pendiente"), "los estados distinguen mayúsculas en el archivo")
}
