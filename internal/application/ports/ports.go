package ports

import (
	"context"
	"io"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. El TxRunner
// los construye sobre la tx activa y los pasa al callback.
type TxRepos struct {
	Warehouses repository.WarehouseRepository
	Pallets    repository.PalletRepository
	Bins       repository.BinRepository
	Skus       repository.SkuRepository
	BinSkus    repository.BinSkuRepository
	Sequences  repository.SequenceRepository
	Activity   repository.ActivityLogRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados
// a esa tx. Garantiza atomicidad de las operaciones multi-paso: generación de
// número + insert + log, y lectura + acumulación + escritura de cantidades.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// ImageStore es el blob store opaco para imágenes: guarda el contenido y
// devuelve la URL pública. La mecánica de almacenamiento queda fuera del
// núcleo.
type ImageStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
