package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
)

// fakeClientRepo repositorio en memoria que preserva el orden de inserción,
// igual que el ORDER BY created_at del repositorio real.
type fakeClientRepo struct {
	clients []*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients = append(r.clients, &cp)
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	return r.clients, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	for i, existing := range r.clients {
		if existing.ID == c.ID {
			cp := *c
			r.clients[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeClientRepo) Delete(id string) error {
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Caso 1: Alta con solo el nombre; el resto queda vacío y el id es generado.
func TestClientCreate_SoloNombre(t *testing.T) {
	uc := usecase.NewClientUseCase(&fakeClientRepo{})

	out, err := uc.Create(dto.CreateClientRequest{Name: "Carlos Pérez"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Carlos Pérez", out.Name)
	assert.Equal(t, "", out.Email)
	assert.Equal(t, "", out.Company)
}

// Caso 2: El nombre es obligatorio.
func TestClientCreate_NombreRequerido(t *testing.T) {
	uc := usecase.NewClientUseCase(&fakeClientRepo{})
	_, err := uc.Create(dto.CreateClientRequest{Email: "sin@nombre.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: List devuelve los clientes en orden de creación.
func TestClientList_OrdenDeCreacion(t *testing.T) {
	uc := usecase.NewClientUseCase(&fakeClientRepo{})

	for _, name := range []string{"Ana", "Bruno", "Celia"} {
		_, err := uc.Create(dto.CreateClientRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Bruno", list[1].Name)
	assert.Equal(t, "Celia", list[2].Name)
}

// Caso 4: Update parcial: cambia solo los campos enviados.
func TestClientUpdate_Parcial(t *testing.T) {
	uc := usecase.NewClientUseCase(&fakeClientRepo{})
	created, err := uc.Create(dto.CreateClientRequest{Name: "Marta Ríos", Email: "marta@acme.com"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateClientRequest{Phone: strPtr("300-555-0101")})
	require.NoError(t, err)
	assert.Equal(t, "Marta Ríos", out.Name, "el nombre no enviado se conserva")
	assert.Equal(t, "marta@acme.com", out.Email)
	assert.Equal(t, "300-555-0101", out.Phone)
}

// Caso 5: Update y Delete sobre id inexistente devuelven ErrNotFound.
func TestClient_IDInexistente(t *testing.T) {
	uc := usecase.NewClientUseCase(&fakeClientRepo{})

	_, err := uc.Update("no-existe", dto.UpdateClientRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 6: Delete elimina el cliente del listado.
func TestClientDelete_EliminaDelListado(t *testing.T) {
	uc := usecase.NewClientUseCase(&fakeClientRepo{})
	created, err := uc.Create(dto.CreateClientRequest{Name: "Temporal"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
