package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymops/admin-console/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestClient(t *testing.T, router *gin.Engine, token string) *Client {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewClient(server.URL, server.Client(), staticToken(token))
}

func TestLoginSendsFormCredentials(t *testing.T) {
	router := gin.New()
	router.POST("/api/auth/login", func(c *gin.Context) {
		if c.PostForm("username") != "admin@gym.com" || c.PostForm("password") != "secreto" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Credenciales incorrectas"})
			return
		}
		// login must not carry a bearer header even when a token is cached
		assert.Empty(t, c.GetHeader("Authorization"))
		c.JSON(http.StatusOK, gin.H{"access_token": "nuevo-token", "token_type": "bearer"})
	})
	client := newTestClient(t, router, "token-viejo")

	token, err := client.Login(context.Background(), "admin@gym.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "nuevo-token", token)

	_, err = client.Login(context.Background(), "admin@gym.com", "mal")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Credenciales incorrectas", apiErr.Detail)
}

func TestAuthenticatedCallsCarryBearerToken(t *testing.T) {
	var gotAuth string
	router := gin.New()
	router.GET("/api/clients/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, []domain.ClienteGym{})
	})
	client := newTestClient(t, router, "abc123")

	_, err := client.ListClientes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestListClientes(t *testing.T) {
	clientes := []domain.ClienteGym{
		{ID: 1, Nombre: gofakeit.FirstName(), Apellido: gofakeit.LastName(), Email: gofakeit.Email(), TipoUsuario: domain.TipoUsuarioVirtual, Activo: true},
		{ID: 2, Nombre: gofakeit.FirstName(), Apellido: gofakeit.LastName(), Email: gofakeit.Email(), TipoUsuario: domain.TipoUsuarioPresencial, Activo: true},
	}
	router := gin.New()
	router.GET("/api/clients/", func(c *gin.Context) {
		c.JSON(http.StatusOK, clientes)
	})
	client := newTestClient(t, router, "tok")

	got, err := client.ListClientes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clientes, got)
}

func TestUpdateClienteUsesPatch(t *testing.T) {
	var gotMethod string
	var gotPayload domain.ClienteCreate
	router := gin.New()
	router.PATCH("/api/clients/7", func(c *gin.Context) {
		gotMethod = c.Request.Method
		require.NoError(t, c.ShouldBindJSON(&gotPayload))
		c.JSON(http.StatusOK, domain.ClienteGym{ID: 7, Nombre: gotPayload.Nombre})
	})
	client := newTestClient(t, router, "tok")

	updated, err := client.UpdateCliente(context.Background(), 7, domain.ClienteCreate{Nombre: "Luisa", Apellido: "Mora", Email: "luisa@gym.com"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "Luisa", gotPayload.Nombre)
	assert.Equal(t, 7, updated.ID)
}

func TestListEjerciciosFilterQuery(t *testing.T) {
	var gotGrupo []string
	router := gin.New()
	router.GET("/api/entrenamientos/ejercicios/", func(c *gin.Context) {
		gotGrupo = append(gotGrupo, c.Query("grupo_muscular"))
		c.JSON(http.StatusOK, []domain.Ejercicio{{ID: 1, Nombre: "Press banca", GrupoMuscular: "Pecho"}})
	})
	client := newTestClient(t, router, "tok")

	// unfiltered: the query parameter is absent, not empty-valued
	_, err := client.ListEjercicios(context.Background(), "")
	require.NoError(t, err)
	_, err = client.ListEjercicios(context.Background(), "Pecho")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Pecho"}, gotGrupo)
}

func TestListValoracionesScopedToCliente(t *testing.T) {
	var gotClienteID string
	router := gin.New()
	router.GET("/api/valoraciones/", func(c *gin.Context) {
		gotClienteID = c.Query("cliente_id")
		c.JSON(http.StatusOK, []domain.ValoracionFisica{{ID: 4, ClienteID: 3}})
	})
	client := newTestClient(t, router, "tok")

	vals, err := client.ListValoraciones(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "3", gotClienteID)
	require.Len(t, vals, 1)
	assert.Equal(t, 3, vals[0].ClienteID)
}

func TestCreateRutinaSubmitsNestedDraft(t *testing.T) {
	var gotDraft domain.RutinaDraft
	router := gin.New()
	router.POST("/api/entrenamientos/rutinas/", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&gotDraft))
		c.JSON(http.StatusCreated, domain.Rutina{ID: 12, Nombre: gotDraft.Nombre, ClienteID: gotDraft.ClienteID, Activo: true})
	})
	client := newTestClient(t, router, "tok")

	draft := domain.RutinaDraft{
		Nombre: "Hipertrofia 4 semanas", Nivel: "Intermedio", DuracionSemanas: 4, ClienteID: 3,
		Dias: []domain.DiaRutina{
			{Nombre: "Día 1", Orden: 1, Ejercicios: []domain.DetalleEjercicio{
				{EjercicioID: 9, NombreEjercicio: "Sentadilla", Series: 3, Repeticiones: "10-12", DescansoSegundos: 60},
			}},
			{Nombre: "Día 2", Orden: 2, Ejercicios: []domain.DetalleEjercicio{}},
		},
	}
	rutina, err := client.CreateRutina(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, 12, rutina.ID)

	// the whole tree goes up in one request, orden intact
	assert.Equal(t, draft, gotDraft)
}

func TestGetProgreso(t *testing.T) {
	router := gin.New()
	router.GET("/api/valoraciones/cliente/3/progreso", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"valoraciones_count": 2,
			"cambios":            gin.H{"peso": -1.5, "imc": -0.4},
		})
	})
	client := newTestClient(t, router, "tok")

	progreso, err := client.GetProgreso(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, progreso.ValoracionesCount)
	require.NotNil(t, progreso.Cambios)
	assert.InDelta(t, -1.5, progreso.Cambios.Peso, 0.001)
}

func TestErrorWithoutDetailBody(t *testing.T) {
	router := gin.New()
	router.DELETE("/api/clients/9", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "<html>oops</html>")
	})
	client := newTestClient(t, router, "tok")

	err := client.DeleteCliente(context.Background(), 9)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
	assert.Equal(t, "el servidor respondió con estado 500", apiErr.Error())
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(gin.New())
	server.Close()
	client := NewClient(server.URL, http.DefaultClient, staticToken(""))

	_, err := client.ListClientes(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)

	_, err = client.Login(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrRequestFailed)
}
