package circulation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/circulation"
)

// Entrega sobre un empaque nuevo: crece Inside y el total.
func TestApplyDelivery_EmpaqueNuevo(t *testing.T) {
	b := circulation.Balance{}
	out, err := circulation.ApplyDelivery(b, 20)
	require.NoError(t, err)

	assert.Equal(t, circulation.Balance{Quantity: 20, Inside: 20, Outside: 0}, out)
	assert.True(t, out.Consistent())
}

// Envío: mueve unidades de Inside a Outside sin cambiar el total.
func TestApplySend_ConservaTotal(t *testing.T) {
	b := circulation.Balance{Quantity: 20, Inside: 20}
	out, err := circulation.ApplySend(b, 8)
	require.NoError(t, err)

	assert.Equal(t, circulation.Balance{Quantity: 20, Inside: 12, Outside: 8}, out)
	assert.True(t, out.Consistent())
}

// Recepción sin pérdida: las unidades regresan al almacén.
func TestApplyReceive_SinPerdida(t *testing.T) {
	b := circulation.Balance{Quantity: 20, Inside: 12, Outside: 8}
	out, err := circulation.ApplyReceive(b, 5, true)
	require.NoError(t, err)

	assert.Equal(t, circulation.Balance{Quantity: 20, Inside: 17, Outside: 3}, out)
	assert.True(t, out.Consistent())
}

// Recepción con daño: write-off, el total se reduce e Inside no cambia.
func TestApplyReceive_ConPerdida(t *testing.T) {
	b := circulation.Balance{Quantity: 20, Inside: 12, Outside: 8}
	out, err := circulation.ApplyReceive(b, 3, false)
	require.NoError(t, err)

	assert.Equal(t, circulation.Balance{Quantity: 17, Inside: 12, Outside: 5}, out)
	assert.True(t, out.Consistent())
}

// Cantidades no positivas se rechazan en las tres transiciones.
func TestTransiciones_CantidadNoPositiva(t *testing.T) {
	b := circulation.Balance{Quantity: 10, Inside: 5, Outside: 5}
	for _, qty := range []int{0, -1, -100} {
		_, err := circulation.ApplyDelivery(b, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		_, err = circulation.ApplySend(b, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		_, err = circulation.ApplyReceive(b, qty, true)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

// Enviar más de lo que hay en el almacén debe fallar sin mutar el balance.
func TestApplySend_ExcedeInside(t *testing.T) {
	b := circulation.Balance{Quantity: 20, Inside: 12, Outside: 8}
	out, err := circulation.ApplySend(b, 13)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, b, out, "un envío rechazado no debe alterar las cubetas")
}

// Recibir más de lo que está fuera debe fallar en ambas ramas (OK y pérdida).
func TestApplyReceive_ExcedeOutside(t *testing.T) {
	b := circulation.Balance{Quantity: 20, Inside: 12, Outside: 8}

	_, err := circulation.ApplyReceive(b, 9, true)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = circulation.ApplyReceive(b, 9, false)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Propiedad de conservación: tras cualquier secuencia de transiciones
// confirmadas, Inside + Outside == Quantity y ninguna cubeta es negativa.
func TestTransiciones_ConservacionBajoSecuenciasAleatorias(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for seq := 0; seq < 200; seq++ {
		b := circulation.Balance{}
		for op := 0; op < 50; op++ {
			qty := rng.Intn(15) + 1
			var (
				out circulation.Balance
				err error
			)
			switch rng.Intn(4) {
			case 0:
				out, err = circulation.ApplyDelivery(b, qty)
			case 1:
				out, err = circulation.ApplySend(b, qty)
			case 2:
				out, err = circulation.ApplyReceive(b, qty, true)
			default:
				out, err = circulation.ApplyReceive(b, qty, false)
			}
			if err != nil {
				// Transición rechazada: el balance no debe haber cambiado.
				require.Equal(t, b, out)
				continue
			}
			b = out
			require.True(t, b.Consistent(), "invariante roto: %+v", b)
			require.GreaterOrEqual(t, b.Inside, 0)
			require.GreaterOrEqual(t, b.Outside, 0)
			require.GreaterOrEqual(t, b.Quantity, 0)
		}
	}
}
