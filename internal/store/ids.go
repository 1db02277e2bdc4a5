package store

import (
	"fmt"
	"math/rand"
	"time"
)

// IDs opacos con el formato histórico de los datos ya persistidos:
// prefijo + timestamp en milisegundos + sufijo aleatorio. El cierre de caja
// usa la fecha como id porque hay a lo sumo un registro por día.

func generateID(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}

func NewSaleID() string    { return generateID("SALE") }
func NewExpenseID() string { return generateID("EXP") }
func NewProductID() string { return generateID("PROD") }

func CashRegisterID(date string) string { return "CASH_" + date }
