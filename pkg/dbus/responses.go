package dbus

import "encoding/json"

// Endpoint envelopes. Every one carries an "estado" status string and an
// "avisos" notice block; the payload field name differs per endpoint
// ("lista", "lineas", "tiempos", "itinerarios", "puntos", "horas") and must
// match the upstream wire name for that endpoint.

// TiemposParadaResponse is returned by tiemposParada and tiemposParadaBus.
type TiemposParadaResponse struct {
	Estado  string   `json:"estado"`
	Avisos  *Avisos  `json:"avisos"`
	Parada  *Parada  `json:"parada"`
	Tiempos []Tiempo `json:"tiempos"`
}

// DatosVehiculoResponse is returned by datosVehiculo. The vehicle payload has
// never been observed pinned down upstream, so it is kept raw for callers to
// decode once the live shape is confirmed.
type DatosVehiculoResponse struct {
	Estado   string          `json:"estado"`
	Avisos   *Avisos         `json:"avisos"`
	Vehiculo json.RawMessage `json:"vehiculo"`
}

// AvisosResponse is returned by the avisos endpoint.
type AvisosResponse struct {
	Estado string  `json:"estado"`
	Avisos *Avisos `json:"avisos"`
}

// ExpedicionesParadaItinerarioResponse is returned by
// expedicionesParadaItinerario.
type ExpedicionesParadaItinerarioResponse struct {
	Estado     string      `json:"estado"`
	Avisos     *Avisos     `json:"avisos"`
	Itinerario *Itinerario `json:"itinerario"`
	Horas      []string    `json:"horas"`
}

// ExpedicionesParadaSentidoResponse is returned by expedicionesParadaSentido.
type ExpedicionesParadaSentidoResponse struct {
	Estado     string      `json:"estado"`
	Avisos     *Avisos     `json:"avisos"`
	Itinerario *Itinerario `json:"itinerario"`
	Horas      []string    `json:"horas"`
}

// ExpedicionesItinerarioResponse is returned by expedicionesItinerario.
type ExpedicionesItinerarioResponse struct {
	Estado     string      `json:"estado"`
	Avisos     *Avisos     `json:"avisos"`
	Itinerario *Itinerario `json:"itinerario"`
	Horas      []string    `json:"horas"`
}

// ItinerariosLineaResponse is returned by itinerariosLinea.
type ItinerariosLineaResponse struct {
	Estado string       `json:"estado"`
	Avisos *Avisos      `json:"avisos"`
	Linea  *Linea       `json:"linea"`
	Lista  []Itinerario `json:"lista"`
}

// SentidosLineaResponse is returned by sentidosLinea.
type SentidosLineaResponse struct {
	Estado string    `json:"estado"`
	Avisos *Avisos   `json:"avisos"`
	Linea  *Linea    `json:"linea"`
	Lista  []Sentido `json:"lista"`
}

// LineasParadaResponse is returned by lineasParada.
type LineasParadaResponse struct {
	Estado string  `json:"estado"`
	Avisos *Avisos `json:"avisos"`
	Lista  []Linea `json:"lista"`
}

// ListadoLineasResponse is returned by listadoLineas. Here the collection is
// named "lineas", not "lista".
type ListadoLineasResponse struct {
	Estado string  `json:"estado"`
	Avisos *Avisos `json:"avisos"`
	Lineas []Linea `json:"lineas"`
}

// ParadasItinerarioResponse is returned by paradasItinerario.
type ParadasItinerarioResponse struct {
	Estado     string      `json:"estado"`
	Avisos     *Avisos     `json:"avisos"`
	Itinerario *Itinerario `json:"itinerario"`
	Lista      []Parada    `json:"lista"`
}

// ParadasSentidoResponse is returned by paradasSentido.
type ParadasSentidoResponse struct {
	Estado     string      `json:"estado"`
	Avisos     *Avisos     `json:"avisos"`
	Itinerario *Itinerario `json:"itinerario"`
	Lista      []Parada    `json:"lista"`
}

// RecorridoLineaResponse is returned by recorridoLinea. Each itinerary
// carries its route geometry in Puntos.
type RecorridoLineaResponse struct {
	Estado      string       `json:"estado"`
	Avisos      *Avisos      `json:"avisos"`
	Itinerarios []Itinerario `json:"itinerarios"`
}

// PuntosParadaResponse is returned by puntosParada.
type PuntosParadaResponse struct {
	Estado string  `json:"estado"`
	Avisos *Avisos `json:"avisos"`
	Puntos []Punto `json:"puntos"`
}
