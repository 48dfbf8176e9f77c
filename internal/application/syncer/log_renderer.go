package syncer

import (
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
	"github.com/jhoicas/Comercio-admin/pkg/logger"
)

// LogRenderer renderer de respaldo: deja traza de cada sincronización.
// La presentación real vive fuera del core; esto solo da observabilidad
// cuando no hay otro colaborador registrado.
type LogRenderer struct {
	log *logger.Logger
}

// NewLogRenderer construye el renderer de log.
func NewLogRenderer(log *logger.Logger) *LogRenderer {
	return &LogRenderer{log: log}
}

func (r *LogRenderer) RenderProducts(list []entity.Product) {
	r.log.Debug().Int("count", len(list)).Msg("snapshot de productos sincronizado")
}

func (r *LogRenderer) RenderOrders(list []entity.Order) {
	r.log.Debug().Int("count", len(list)).Msg("snapshot de órdenes sincronizado")
}

func (r *LogRenderer) RenderCartItems(list []entity.CartItem) {
	r.log.Debug().Int("count", len(list)).Msg("snapshot de carritos sincronizado")
}

func (r *LogRenderer) RenderCustomers(list []entity.Customer) {
	r.log.Debug().Int("count", len(list)).Msg("snapshot de clientes sincronizado")
}
