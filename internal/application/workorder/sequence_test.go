package workorder_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appwo "github.com/jhoicas/Fabrica-api/internal/application/workorder"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// fakeSeqRepo contador en memoria con la misma garantía que el storage real:
// cada operación es un único read-modify-write serializado.
type fakeSeqRepo struct {
	mu   sync.Mutex
	seqs map[string]int
}

func newFakeSeqRepo() *fakeSeqRepo {
	return &fakeSeqRepo{seqs: make(map[string]int)}
}

func (f *fakeSeqRepo) Next(period string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seqs[period]++
	return f.seqs[period], nil
}

func (f *fakeSeqRepo) Advance(period string, seq int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.seqs[period]
	if !ok {
		f.seqs[period] = 1
		return nil
	}
	if cur < seq {
		f.seqs[period] = seq
	}
	return nil
}

func (f *fakeSeqRepo) Decrement(period string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.seqs[period]
	if !ok {
		return 0, domain.ErrSeqNotFound
	}
	if cur > 0 {
		cur--
	}
	f.seqs[period] = cur
	return cur, nil
}

func (f *fakeSeqRepo) Get(period string) (*entity.WorkOrderSeq, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.seqs[period]
	if !ok {
		return nil, nil
	}
	return &entity.WorkOrderSeq{ID: period, Seq: cur}, nil
}

var marzo = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

func TestAllocate_FormatoYRelleno(t *testing.T) {
	alloc := appwo.NewSequenceAllocator(newFakeSeqRepo())

	id, err := alloc.Allocate(marzo, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-001", id, "primer ID del período debe ser seq=1 a tres dígitos")

	id, err = alloc.Allocate(marzo, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-002", id)
}

func TestAllocate_PeriodosIndependientes(t *testing.T) {
	alloc := appwo.NewSequenceAllocator(newFakeSeqRepo())

	id1, err := alloc.Allocate(marzo, "")
	require.NoError(t, err)
	id2, err := alloc.Allocate(marzo.AddDate(0, 1, 0), "")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-001", id1)
	assert.Equal(t, "2024-04-001", id2, "cada período arranca su propio contador en 1")
}

func TestAllocate_Concurrente_SinDuplicados(t *testing.T) {
	const n = 64
	alloc := appwo.NewSequenceAllocator(newFakeSeqRepo())

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alloc.Allocate(marzo, "")
			assert.NoError(t, err)
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, n, "N asignaciones concurrentes del mismo período deben dar N IDs distintos")
}

func TestRollback_DecrementaYSiguienteReusa(t *testing.T) {
	repo := newFakeSeqRepo()
	alloc := appwo.NewSequenceAllocator(repo)

	id, err := alloc.Allocate(marzo, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-001", id)

	rolled, err := alloc.Rollback(marzo)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-000", rolled, "el ID devuelto por rollback es informativo")

	// El contador volvió a 0: la siguiente asignación vuelve a dar seq=1.
	id, err = alloc.Allocate(marzo, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-001", id)
}

func TestRollback_PisoCero(t *testing.T) {
	repo := newFakeSeqRepo()
	alloc := appwo.NewSequenceAllocator(repo)

	_, err := alloc.Allocate(marzo, "")
	require.NoError(t, err)
	_, err = alloc.Rollback(marzo)
	require.NoError(t, err)
	rolled, err := alloc.Rollback(marzo)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-000", rolled, "el contador nunca baja de 0")
}

func TestRollback_SinContador_Falla(t *testing.T) {
	alloc := appwo.NewSequenceAllocator(newFakeSeqRepo())

	_, err := alloc.Rollback(marzo)
	assert.ErrorIs(t, err, domain.ErrSeqNotFound)
}

func TestAllocate_IDProvisto_SinContador_CreaEnUno(t *testing.T) {
	repo := newFakeSeqRepo()
	alloc := appwo.NewSequenceAllocator(repo)

	id, err := alloc.Allocate(marzo, "2024-03-050")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-050", id, "el ID provisto se devuelve sin cambios")

	seq, err := repo.Get("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Seq, "sin contador previo se crea en 1, sin adoptar el valor provisto")
}

func TestAllocate_IDProvisto_AvanzaContadorMenor(t *testing.T) {
	repo := newFakeSeqRepo()
	alloc := appwo.NewSequenceAllocator(repo)

	// Deja el contador en 10.
	for i := 0; i < 10; i++ {
		_, err := alloc.Allocate(marzo, "")
		require.NoError(t, err)
	}

	id, err := alloc.Allocate(marzo, "2024-03-050")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-050", id)

	seq, err := repo.Get("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 50, seq.Seq, "10 < 50: el contador avanza hasta el valor importado")

	// El siguiente generado no choca con el importado.
	id, err = alloc.Allocate(marzo, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-051", id)
}

func TestAllocate_IDProvisto_NoRetrocedeContadorMayor(t *testing.T) {
	repo := newFakeSeqRepo()
	alloc := appwo.NewSequenceAllocator(repo)

	for i := 0; i < 10; i++ {
		_, err := alloc.Allocate(marzo, "")
		require.NoError(t, err)
	}

	_, err := alloc.Allocate(marzo, "2024-03-003")
	require.NoError(t, err)

	seq, err := repo.Get("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 10, seq.Seq, "un ID importado menor no retrocede el contador")
}
