package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gymops/admin-console/internal/api"
	"gymops/admin-console/internal/config"
	"gymops/admin-console/internal/domain"
	"gymops/admin-console/internal/export"
	"gymops/admin-console/internal/progress"
	"gymops/admin-console/internal/rutina"
	"gymops/admin-console/internal/session"
	"gymops/admin-console/internal/views"

	log "github.com/sirupsen/logrus"
)

// console is the interactive shell. One command per line; every command
// except login, ayuda and salir requires an authenticated session.
type console struct {
	cfg      config.Config
	session  *session.Store
	backend  *api.Client
	exporter *export.PDFExporter

	in  *bufio.Scanner
	out io.Writer

	clientes     *views.ClientesView
	usuarios     *views.UsuariosView
	ejercicios   *views.EjerciciosView
	valoraciones *views.ValoracionesView
	rutinas      *views.RutinasView
}

func newConsole(cfg config.Config, store *session.Store, backend *api.Client, exporter *export.PDFExporter, in io.Reader, out io.Writer) *console {
	c := &console{
		cfg:      cfg,
		session:  store,
		backend:  backend,
		exporter: exporter,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	prompt := &consolePrompter{in: c.in, out: out}
	c.clientes = views.NewClientesView(backend, out, prompt)
	c.usuarios = views.NewUsuariosView(backend, out, prompt)
	c.ejercicios = views.NewEjerciciosView(backend, out, prompt)
	c.valoraciones = views.NewValoracionesView(backend, out, prompt)
	c.rutinas = views.NewRutinasView(backend, out)
	return c
}

// consolePrompter asks yes/no questions on the console. Anything that does
// not start with "s" counts as a no.
type consolePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *consolePrompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s (s/n): ", question)
	if !p.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(p.in.Text()))
	return strings.HasPrefix(answer, "s")
}

func (c *console) Run(ctx context.Context) {
	fmt.Fprintln(c.out, "Consola de administración del gimnasio. Escribe 'ayuda' para ver los comandos.")
	if c.session.IsAuthenticated() {
		if claims := c.session.Claims(); claims != nil {
			fmt.Fprintf(c.out, "Sesión restaurada: %s\n", claims.Email)
		} else {
			fmt.Fprintln(c.out, "Sesión restaurada.")
		}
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out, "\nHasta pronto.")
			return
		default:
		}

		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return
		}
		args := strings.Fields(c.in.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "salir" {
			fmt.Fprintln(c.out, "Hasta pronto.")
			return
		}
		c.dispatch(ctx, args)
	}
}

func (c *console) dispatch(ctx context.Context, args []string) {
	cmd := args[0]
	switch cmd {
	case "ayuda":
		c.printHelp()
		return
	case "login":
		c.login(ctx, args[1:])
		return
	}

	// every other command is behind the session
	if !c.session.IsAuthenticated() {
		fmt.Fprintln(c.out, "Inicia sesión primero con: login <email>")
		return
	}

	var err error
	switch cmd {
	case "logout":
		c.session.Logout()
		fmt.Fprintln(c.out, "Sesión cerrada.")
	case "clientes":
		err = c.runClientes(ctx, args[1:])
	case "usuarios":
		err = c.runUsuarios(ctx, args[1:])
	case "ejercicios":
		err = c.runEjercicios(ctx, args[1:])
	case "valoraciones":
		err = c.runValoraciones(ctx, args[1:])
	case "rutinas":
		if err = c.rutinas.Refresh(ctx); err == nil {
			c.rutinas.Render()
		}
	case "rutina":
		if len(args) > 1 && args[1] == "nueva" {
			c.runBuilder(ctx)
		} else {
			fmt.Fprintln(c.out, "Uso: rutina nueva")
		}
	case "progreso":
		err = c.runProgreso(ctx, args[1:])
	case "exportar":
		err = c.runExportar(ctx, args[1:])
	default:
		fmt.Fprintf(c.out, "Comando desconocido: %s\n", cmd)
	}
	if err != nil {
		fmt.Fprintln(c.out, views.FailureMessage(err, "La operación no se pudo completar"))
	}
}

func (c *console) printHelp() {
	fmt.Fprintln(c.out, `Comandos:
  login <email>                             iniciar sesión
  logout                                    cerrar sesión
  clientes [crear|editar <id>|eliminar <id>]
  usuarios [crear|editar <id>|eliminar <id>]
  ejercicios [crear|editar <id>|eliminar <id>|filtro <grupo>]
  valoraciones <cliente_id>                 valoraciones de un cliente
  valoraciones crear <cliente_id>           registrar una valoración
  valoraciones editar <id>                  corregir una valoración
  valoraciones eliminar <id>                eliminar una valoración
  rutinas                                   rutinas guardadas
  rutina nueva                              crear una rutina nueva
  progreso <cliente_id>                     resumen de progreso
  exportar <cliente_id>                     generar el informe PDF
  salir                                     terminar`)
}

func (c *console) login(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Uso: login <email>")
		return
	}
	fmt.Fprint(c.out, "Contraseña: ")
	if !c.in.Scan() {
		return
	}
	password := c.in.Text()

	token, err := c.backend.Login(ctx, args[0], password)
	if err != nil {
		fmt.Fprintln(c.out, views.FailureMessage(err, "No se pudo iniciar sesión"))
		return
	}
	if err := c.session.Login(token); err != nil {
		// the backend issued something we cannot decode; the session was
		// already discarded
		fmt.Fprintln(c.out, "El servidor devolvió un token inválido. Intenta de nuevo.")
		return
	}
	fmt.Fprintf(c.out, "Sesión iniciada como %s\n", args[0])
}

// ask prompts for one form field. A non-empty current value is offered as
// the default; an empty answer keeps it.
func (c *console) ask(label, current string) string {
	if current != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	if !c.in.Scan() {
		return current
	}
	answer := strings.TrimSpace(c.in.Text())
	if answer == "" {
		return current
	}
	return answer
}

func parseID(args []string, idx int) (int, error) {
	if len(args) <= idx {
		return 0, fmt.Errorf("falta el id")
	}
	id, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("id inválido: %s", args[idx])
	}
	return id, nil
}

// askOptFloat reads an optional numeric field; an empty answer omits the
// field from the payload.
func (c *console) askOptFloat(label string) (*float64, error) {
	answer := c.ask(label+" (vacío para omitir)", "")
	if answer == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: número inválido %q", label, answer)
	}
	return &v, nil
}

func (c *console) promptCliente(base domain.ClienteGym) domain.ClienteCreate {
	return domain.ClienteCreate{
		Nombre:          c.ask("Nombre", base.Nombre),
		Apellido:        c.ask("Apellido", base.Apellido),
		Email:           c.ask("Email", base.Email),
		Telefono:        c.ask("Teléfono", base.Telefono),
		TipoUsuario:     domain.TipoUsuario(c.ask("Tipo (VIRTUAL/PRESENCIAL/HIBRIDO)", string(base.TipoUsuario))),
		ObjetivoFitness: c.ask("Objetivo fitness", base.ObjetivoFitness),
	}
}

func (c *console) runClientes(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "crear":
			payload := c.promptCliente(domain.ClienteGym{TipoUsuario: domain.TipoUsuarioPresencial})
			if err := c.clientes.Save(ctx, 0, payload); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Cliente creado.")
			c.clientes.Render()
			return nil
		case "editar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			if err := c.clientes.Refresh(ctx); err != nil {
				return err
			}
			base, ok := c.clientes.Find(id)
			if !ok {
				return fmt.Errorf("no existe el cliente %d", id)
			}
			if err := c.clientes.Save(ctx, id, c.promptCliente(base)); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Cliente actualizado.")
			return nil
		case "eliminar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			if err := c.clientes.Refresh(ctx); err != nil {
				return err
			}
			return c.clientes.Delete(ctx, id)
		}
	}
	if err := c.clientes.Refresh(ctx); err != nil {
		return err
	}
	c.clientes.Render()
	return nil
}

func (c *console) promptUsuario() domain.UsuarioCreate {
	payload := domain.UsuarioCreate{
		Email:    c.ask("Email", ""),
		FullName: c.ask("Nombre completo", ""),
		Password: c.ask("Contraseña (vacío sin cambio)", ""),
		Role:     domain.Role(c.ask("Rol (admin/user)", "")),
	}
	switch strings.ToLower(c.ask("¿Activo? (s/n, vacío sin cambio)", "")) {
	case "s":
		activo := true
		payload.IsActive = &activo
	case "n":
		activo := false
		payload.IsActive = &activo
	}
	return payload
}

func (c *console) runUsuarios(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "crear":
			if err := c.usuarios.Save(ctx, 0, c.promptUsuario()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Usuario creado.")
			c.usuarios.Render()
			return nil
		case "editar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			if err := c.usuarios.Save(ctx, id, c.promptUsuario()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Usuario actualizado.")
			return nil
		case "eliminar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			if err := c.usuarios.Refresh(ctx); err != nil {
				return err
			}
			return c.usuarios.Delete(ctx, id)
		}
	}
	if err := c.usuarios.Refresh(ctx); err != nil {
		return err
	}
	c.usuarios.Render()
	return nil
}

func (c *console) promptEjercicio(base domain.Ejercicio) domain.EjercicioCreate {
	return domain.EjercicioCreate{
		Nombre:          c.ask("Nombre", base.Nombre),
		GrupoMuscular:   c.ask("Grupo muscular", base.GrupoMuscular),
		EquipoNecesario: c.ask("Equipo necesario", base.EquipoNecesario),
		Descripcion:     c.ask("Descripción", base.Descripcion),
		VideoURL:        c.ask("URL de video", base.VideoURL),
	}
}

func (c *console) runEjercicios(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "filtro":
			grupo := ""
			if len(args) > 1 {
				grupo = strings.Join(args[1:], " ")
			}
			if err := c.ejercicios.SetFiltro(ctx, grupo); err != nil {
				return err
			}
			c.ejercicios.Render()
			return nil
		case "crear":
			if err := c.ejercicios.Save(ctx, 0, c.promptEjercicio(domain.Ejercicio{})); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Ejercicio creado.")
			c.ejercicios.Render()
			return nil
		case "editar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			if err := c.ejercicios.Refresh(ctx); err != nil {
				return err
			}
			base, ok := c.ejercicios.Find(id)
			if !ok {
				return fmt.Errorf("no existe el ejercicio %d", id)
			}
			if err := c.ejercicios.Save(ctx, id, c.promptEjercicio(base)); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Ejercicio actualizado.")
			return nil
		case "eliminar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			if err := c.ejercicios.Refresh(ctx); err != nil {
				return err
			}
			return c.ejercicios.Delete(ctx, id)
		}
	}
	if err := c.ejercicios.Refresh(ctx); err != nil {
		return err
	}
	c.ejercicios.Render()
	return nil
}

// promptValoracion collects a measurement payload. Empty optional fields
// are omitted from the document rather than sent as nulls, so an edit only
// touches what the operator actually typed.
func (c *console) promptValoracion() (domain.ValoracionCreate, error) {
	payload := domain.ValoracionCreate{
		Tipo: domain.TipoValoracion(strings.ToUpper(c.ask("Tipo (INICIAL/SEGUIMIENTO/FINAL)", ""))),
	}
	var err error
	if payload.Peso, err = c.askOptFloat("Peso (kg)"); err != nil {
		return payload, err
	}
	if payload.Altura, err = c.askOptFloat("Altura (cm)"); err != nil {
		return payload, err
	}
	if payload.PorcentajeGrasa, err = c.askOptFloat("Grasa corporal (%)"); err != nil {
		return payload, err
	}
	if payload.MasaMuscular, err = c.askOptFloat("Masa muscular (kg)"); err != nil {
		return payload, err
	}
	if payload.PerimetroCintura, err = c.askOptFloat("Perímetro cintura (cm)"); err != nil {
		return payload, err
	}
	payload.Notas = c.ask("Notas", "")
	payload.Objetivos = c.ask("Objetivos", "")
	return payload, nil
}

func (c *console) runValoraciones(ctx context.Context, args []string) error {
	if len(args) > 1 {
		switch args[0] {
		case "crear":
			clienteID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cliente_id inválido: %s", args[1])
			}
			payload, err := c.promptValoracion()
			if err != nil {
				return err
			}
			payload.ClienteID = clienteID
			if err := c.valoraciones.SetCliente(ctx, clienteID); err != nil {
				return err
			}
			if err := c.valoraciones.Save(ctx, 0, payload); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Valoración registrada.")
			c.valoraciones.Render()
			return nil
		case "editar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			payload, err := c.promptValoracion()
			if err != nil {
				return err
			}
			if err := c.valoraciones.Save(ctx, id, payload); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Valoración actualizada.")
			return nil
		case "eliminar":
			id, err := parseID(args, 1)
			if err != nil {
				return err
			}
			return c.valoraciones.Delete(ctx, id)
		}
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Uso: valoraciones <cliente_id> | crear <cliente_id> | editar <id> | eliminar <id>")
		return nil
	}
	clienteID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("cliente_id inválido: %s", args[0])
	}
	if err := c.valoraciones.SetCliente(ctx, clienteID); err != nil {
		return err
	}
	c.valoraciones.Render()
	return nil
}

func (c *console) runProgreso(ctx context.Context, args []string) error {
	cliente, err := c.findCliente(ctx, args)
	if err != nil {
		return err
	}
	reporte := progress.BuildReporte(ctx, c.backend, *cliente)
	c.renderReporte(reporte)
	return nil
}

func (c *console) runExportar(ctx context.Context, args []string) error {
	cliente, err := c.findCliente(ctx, args)
	if err != nil {
		return err
	}
	reporte := progress.BuildReporte(ctx, c.backend, *cliente)
	path, err := c.exporter.Export(ctx, reporte)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Informe generado: %s\n", path)
	return nil
}

func (c *console) findCliente(ctx context.Context, args []string) (*domain.ClienteGym, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("falta el cliente_id")
	}
	clienteID, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %s", args[0])
	}
	if err := c.clientes.Refresh(ctx); err != nil {
		return nil, err
	}
	cliente, ok := c.clientes.Find(clienteID)
	if !ok {
		return nil, fmt.Errorf("no existe el cliente %d", clienteID)
	}
	return &cliente, nil
}

func (c *console) renderReporte(reporte *progress.Reporte) {
	fmt.Fprintf(c.out, "Progreso de %s\n", reporte.Cliente.NombreCompleto())
	if reporte.Progreso != nil && reporte.Progreso.Mensaje != "" {
		fmt.Fprintln(c.out, reporte.Progreso.Mensaje)
		return
	}
	for _, punto := range reporte.Serie {
		fmt.Fprintf(c.out, "  %s  peso %.1f kg", punto.Fecha.Format("2006-01-02"), punto.Peso)
		if punto.Grasa != nil {
			fmt.Fprintf(c.out, "  grasa %.1f%%", *punto.Grasa)
		}
		if punto.Musculo != nil {
			fmt.Fprintf(c.out, "  músculo %.1f kg", *punto.Musculo)
		}
		fmt.Fprintln(c.out)
	}
	if reporte.Progreso == nil || reporte.Progreso.Cambios == nil {
		return
	}
	cambios := reporte.Progreso.Cambios
	fmt.Fprintf(c.out, "Cambios en %d días:\n", reporte.Progreso.DiasTranscurridos)
	fmt.Fprintf(c.out, "  peso: %s (%s)\n",
		progress.FormatCambio(&cambios.Peso, " kg"), progress.Clasificar(progress.MetricaPeso, cambios.Peso))
	fmt.Fprintf(c.out, "  imc: %s (%s)\n",
		progress.FormatCambio(&cambios.IMC, ""), progress.Clasificar(progress.MetricaIMC, cambios.IMC))
	if cambios.PorcentajeGrasa != nil {
		fmt.Fprintf(c.out, "  grasa: %s (%s)\n",
			progress.FormatCambio(cambios.PorcentajeGrasa, "%"), progress.Clasificar(progress.MetricaGrasa, *cambios.PorcentajeGrasa))
	}
	if cambios.MasaMuscular != nil {
		fmt.Fprintf(c.out, "  músculo: %s (%s)\n",
			progress.FormatCambio(cambios.MasaMuscular, " kg"), progress.Clasificar(progress.MetricaMasaMuscular, *cambios.MasaMuscular))
	}
}

// --- Routine Builder Loop ---

func (c *console) runBuilder(ctx context.Context) {
	var saved *domain.Rutina
	builder := rutina.NewBuilder(c.backend, func(r domain.Rutina) {
		saved = &r
	})
	builder.LoadMasters(ctx)
	fmt.Fprintf(c.out, "Nueva rutina: %d clientes, %d ejercicios en catálogo. Escribe 'ayuda' para los comandos del editor.\n",
		len(builder.Clientes()), len(builder.Catalogo()))

	for builder.State() == rutina.StateEditing {
		fmt.Fprint(c.out, "rutina> ")
		if !c.in.Scan() {
			builder.Cancel()
			break
		}
		args := strings.Fields(c.in.Text())
		if len(args) == 0 {
			continue
		}
		if err := c.builderCommand(ctx, builder, args); err != nil {
			fmt.Fprintln(c.out, views.FailureMessage(err, err.Error()))
		}
	}

	if saved != nil {
		fmt.Fprintf(c.out, "Rutina guardada con id %d.\n", saved.ID)
		log.Infof("rutina %d creada para cliente %d", saved.ID, saved.ClienteID)
	}
}

func (c *console) builderCommand(ctx context.Context, builder *rutina.Builder, args []string) error {
	switch args[0] {
	case "ayuda":
		fmt.Fprintln(c.out, `Editor de rutina:
  nombre <texto>                    nombre de la rutina
  objetivo <texto>                  objetivo
  nivel <texto>                     Principiante | Intermedio | Avanzado
  semanas <n>                       duración en semanas
  cliente <id>                      cliente asignado
  dia                               añadir un día
  quitardia <n>                     quitar el día n
  renombrar <n> <texto>             renombrar el día n
  buscar <término>                  buscar en el catálogo de ejercicios
  agregar <día> <ejercicio_id>      añadir un ejercicio al día
  set <día> <n> <campo> <valor>     editar un ejercicio (series, repeticiones,
                                    peso_sugerido, descanso_segundos, notas)
  quitar <día> <n>                  quitar el ejercicio n del día
  ver                               mostrar el borrador
  guardar                           validar y enviar
  cancelar                          descartar el borrador`)
	case "nombre":
		builder.SetNombre(strings.Join(args[1:], " "))
	case "objetivo":
		builder.SetObjetivo(strings.Join(args[1:], " "))
	case "nivel":
		builder.SetNivel(strings.Join(args[1:], " "))
	case "semanas":
		if len(args) != 2 {
			return fmt.Errorf("uso: semanas <n>")
		}
		semanas, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("número de semanas inválido: %s", args[1])
		}
		builder.SetDuracionSemanas(semanas)
	case "cliente":
		if len(args) != 2 {
			return fmt.Errorf("uso: cliente <id>")
		}
		clienteID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[1])
		}
		builder.SetCliente(clienteID)
	case "dia":
		builder.AddDia()
		fmt.Fprintf(c.out, "Día %d añadido.\n", len(builder.Draft().Dias))
	case "quitardia":
		if len(args) != 2 {
			return fmt.Errorf("uso: quitardia <n>")
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("día inválido: %s", args[1])
		}
		return builder.RemoveDia(idx - 1)
	case "renombrar":
		if len(args) < 3 {
			return fmt.Errorf("uso: renombrar <n> <texto>")
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("día inválido: %s", args[1])
		}
		return builder.RenameDia(idx-1, strings.Join(args[2:], " "))
	case "buscar":
		term := strings.Join(args[1:], " ")
		for _, e := range builder.FilterCatalogo(term) {
			fmt.Fprintf(c.out, "  %d  %s (%s)\n", e.ID, e.Nombre, e.GrupoMuscular)
		}
	case "agregar":
		if len(args) != 3 {
			return fmt.Errorf("uso: agregar <día> <ejercicio_id>")
		}
		diaIdx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("día inválido: %s", args[1])
		}
		ejercicioID, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("ejercicio_id inválido: %s", args[2])
		}
		if err := builder.OpenSelector(diaIdx - 1); err != nil {
			return err
		}
		for _, e := range builder.Catalogo() {
			if e.ID == ejercicioID {
				return builder.SelectEjercicio(e)
			}
		}
		builder.CloseSelector()
		return fmt.Errorf("el ejercicio %d no está en el catálogo", ejercicioID)
	case "set":
		if len(args) < 5 {
			return fmt.Errorf("uso: set <día> <n> <campo> <valor>")
		}
		diaIdx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("día inválido: %s", args[1])
		}
		detIdx, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("posición inválida: %s", args[2])
		}
		return builder.UpdateDetalle(diaIdx-1, detIdx-1, args[3], strings.Join(args[4:], " "))
	case "quitar":
		if len(args) != 3 {
			return fmt.Errorf("uso: quitar <día> <n>")
		}
		diaIdx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("día inválido: %s", args[1])
		}
		detIdx, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("posición inválida: %s", args[2])
		}
		return builder.RemoveDetalle(diaIdx-1, detIdx-1)
	case "ver":
		c.renderDraft(builder.Draft())
	case "guardar":
		return builder.Submit(ctx)
	case "cancelar":
		builder.Cancel()
		fmt.Fprintln(c.out, "Borrador descartado.")
	default:
		return fmt.Errorf("comando desconocido: %s", args[0])
	}
	return nil
}

func (c *console) renderDraft(draft domain.RutinaDraft) {
	fmt.Fprintf(c.out, "Rutina %q (%s, %d semanas), cliente %d\n",
		draft.Nombre, draft.Nivel, draft.DuracionSemanas, draft.ClienteID)
	for _, dia := range draft.Dias {
		fmt.Fprintf(c.out, "  %d. %s\n", dia.Orden, dia.Nombre)
		for i, det := range dia.Ejercicios {
			fmt.Fprintf(c.out, "     %d. %s  %dx%s  descanso %ds", i+1, det.NombreEjercicio, det.Series, det.Repeticiones, det.DescansoSegundos)
			if det.PesoSugerido != "" {
				fmt.Fprintf(c.out, "  peso %s", det.PesoSugerido)
			}
			if det.Notas != "" {
				fmt.Fprintf(c.out, "  (%s)", det.Notas)
			}
			fmt.Fprintln(c.out)
		}
	}
}
