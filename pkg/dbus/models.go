package dbus

// Shared records returned inside most endpoint envelopes. Field names mirror
// the upstream JSON exactly; they are the wire contract, not a style choice.

// Linea is a bus line.
type Linea struct {
	ID     string `json:"id"`
	Cod    string `json:"cod"`
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

// Sentido is one direction of travel of a line.
type Sentido struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Parada is a physical bus stop.
type Parada struct {
	ID          string `json:"id"`
	Cod         string `json:"cod"`
	Desc        string `json:"desc"`
	OrdenParada int    `json:"ordenParada"`
	Habitual    bool   `json:"habitual"`
}

// Punto is a geographic point along a route.
type Punto struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Itinerario is one scheduled path variant of a line. Puntos is only
// populated by the recorridoLinea endpoint.
type Itinerario struct {
	ID            string  `json:"id"`
	Cod           string  `json:"cod"`
	Destino       string  `json:"destino"`
	Nombre        string  `json:"nombre"`
	Linea         *Linea  `json:"linea"`
	Actual        bool    `json:"actual"`
	Puntos        []Punto `json:"puntos"`
	TipoRecorrido int     `json:"tipoRecorrido"`
	ColorRGB      int     `json:"colorRGB"`
	Habitual      int     `json:"habitual"`
}

// Tiempo is a predicted arrival at a stop.
type Tiempo struct {
	Itinerario *Itinerario `json:"itinerario"`
	Creacion   string      `json:"creacion"`
	Minutos    int         `json:"minutos"`
	Cabecera   bool        `json:"cabecera"`
	Tipo       int         `json:"tipo"`
	Hora       string      `json:"hora"`
}

// Aviso is a single service notice.
type Aviso struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}

// Avisos is the notice block attached to every envelope.
type Avisos struct {
	Lista []Aviso `json:"lista"`
}
