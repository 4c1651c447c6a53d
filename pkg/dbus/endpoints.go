package dbus

import (
	"strconv"
	"time"
)

// Wire formats for date and time query values, zero-padded fixed width.
const (
	dateLayout = "020106"
	timeLayout = "1504"
)

// datosVehiculo always sends codEmpresa=1, per the upstream documentation.
const codEmpresa = "1"

// TiemposParadaAsync retrieves estimated arrival times for buses at a stop.
// An empty idioma selects the configured default language.
func (c *Client) TiemposParadaAsync(codParada string, idioma string) *Call[*TiemposParadaResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*TiemposParadaResponse](err)
	}

	requestURL := c.buildURL("tiemposParada", []param{
		{"codParada", codParada},
		{"idioma", idioma},
	})

	return submit(c, func() (*TiemposParadaResponse, error) {
		return getJSON[TiemposParadaResponse](c, requestURL)
	})
}

// TiemposParada is the synchronous form of TiemposParadaAsync.
func (c *Client) TiemposParada(codParada string, idioma string) (*TiemposParadaResponse, error) {
	return c.TiemposParadaAsync(codParada, idioma).Wait()
}

// TiemposParadaBusAsync retrieves estimated arrival times for one specific
// vehicle at a stop.
func (c *Client) TiemposParadaBusAsync(codParada string, codVehiculo string, idioma string) *Call[*TiemposParadaResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*TiemposParadaResponse](err)
	}

	requestURL := c.buildURL("tiemposParadaBus", []param{
		{"codParada", codParada},
		{"codVehiculo", codVehiculo},
		{"idioma", idioma},
	})

	return submit(c, func() (*TiemposParadaResponse, error) {
		return getJSON[TiemposParadaResponse](c, requestURL)
	})
}

// TiemposParadaBus is the synchronous form of TiemposParadaBusAsync.
func (c *Client) TiemposParadaBus(codParada string, codVehiculo string, idioma string) (*TiemposParadaResponse, error) {
	return c.TiemposParadaBusAsync(codParada, codVehiculo, idioma).Wait()
}

// DatosVehiculoAsync retrieves data for a vehicle. petItinerario requests the
// itinerary block alongside the vehicle data.
func (c *Client) DatosVehiculoAsync(codVehiculo string, petItinerario bool) *Call[*DatosVehiculoResponse] {
	requestURL := c.buildURL("datosVehiculo", []param{
		{"codVehiculo", codVehiculo},
		{"codEmpresa", codEmpresa},
		{"petItinerario", strconv.FormatBool(petItinerario)},
	})

	return submit(c, func() (*DatosVehiculoResponse, error) {
		return getJSON[DatosVehiculoResponse](c, requestURL)
	})
}

// DatosVehiculo is the synchronous form of DatosVehiculoAsync.
func (c *Client) DatosVehiculo(codVehiculo string, petItinerario bool) (*DatosVehiculoResponse, error) {
	return c.DatosVehiculoAsync(codVehiculo, petItinerario).Wait()
}

// AvisosAsync retrieves the current service notices.
func (c *Client) AvisosAsync(idioma string) *Call[*AvisosResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*AvisosResponse](err)
	}

	requestURL := c.buildURL("avisos", []param{
		{"idioma", idioma},
	})

	return submit(c, func() (*AvisosResponse, error) {
		return getJSON[AvisosResponse](c, requestURL)
	})
}

// Avisos is the synchronous form of AvisosAsync.
func (c *Client) Avisos(idioma string) (*AvisosResponse, error) {
	return c.AvisosAsync(idioma).Wait()
}

// ExpedicionesParadaItinerarioAsync retrieves departures for a stop and
// itinerary from the given date and time onwards.
func (c *Client) ExpedicionesParadaItinerarioAsync(idItinerario string, idParada string, fecha time.Time, hora time.Time, idioma string) *Call[*ExpedicionesParadaItinerarioResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*ExpedicionesParadaItinerarioResponse](err)
	}

	requestURL := c.buildURL("expedicionesParadaItinerario", []param{
		{"idItinerario", idItinerario},
		{"idParada", idParada},
		{"fecha", fecha.Format(dateLayout)},
		{"hora", hora.Format(timeLayout)},
		{"idioma", idioma},
	})

	return submit(c, func() (*ExpedicionesParadaItinerarioResponse, error) {
		return getJSON[ExpedicionesParadaItinerarioResponse](c, requestURL)
	})
}

// ExpedicionesParadaItinerario is the synchronous form of
// ExpedicionesParadaItinerarioAsync.
func (c *Client) ExpedicionesParadaItinerario(idItinerario string, idParada string, fecha time.Time, hora time.Time, idioma string) (*ExpedicionesParadaItinerarioResponse, error) {
	return c.ExpedicionesParadaItinerarioAsync(idItinerario, idParada, fecha, hora, idioma).Wait()
}

// ExpedicionesParadaSentidoAsync retrieves departures for a stop and
// direction from the given date and time onwards.
func (c *Client) ExpedicionesParadaSentidoAsync(idSentido string, idParada string, fecha time.Time, hora time.Time, idioma string) *Call[*ExpedicionesParadaSentidoResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*ExpedicionesParadaSentidoResponse](err)
	}

	requestURL := c.buildURL("expedicionesParadaSentido", []param{
		{"idSentido", idSentido},
		{"idParada", idParada},
		{"fecha", fecha.Format(dateLayout)},
		{"hora", hora.Format(timeLayout)},
		{"idioma", idioma},
	})

	return submit(c, func() (*ExpedicionesParadaSentidoResponse, error) {
		return getJSON[ExpedicionesParadaSentidoResponse](c, requestURL)
	})
}

// ExpedicionesParadaSentido is the synchronous form of
// ExpedicionesParadaSentidoAsync.
func (c *Client) ExpedicionesParadaSentido(idSentido string, idParada string, fecha time.Time, hora time.Time, idioma string) (*ExpedicionesParadaSentidoResponse, error) {
	return c.ExpedicionesParadaSentidoAsync(idSentido, idParada, fecha, hora, idioma).Wait()
}

// ItinerariosLineaAsync retrieves the itineraries of a line. idParada is
// optional; when empty it is omitted from the query.
func (c *Client) ItinerariosLineaAsync(idLinea string, idParada string, idioma string) *Call[*ItinerariosLineaResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*ItinerariosLineaResponse](err)
	}

	params := []param{{"idLinea", idLinea}}
	if idParada != "" {
		params = append(params, param{"idParada", idParada})
	}
	params = append(params, param{"idioma", idioma})

	requestURL := c.buildURL("itinerariosLinea", params)

	return submit(c, func() (*ItinerariosLineaResponse, error) {
		return getJSON[ItinerariosLineaResponse](c, requestURL)
	})
}

// ItinerariosLinea is the synchronous form of ItinerariosLineaAsync.
func (c *Client) ItinerariosLinea(idLinea string, idParada string, idioma string) (*ItinerariosLineaResponse, error) {
	return c.ItinerariosLineaAsync(idLinea, idParada, idioma).Wait()
}

// SentidosLineaAsync retrieves the directions of a line. idParada is
// optional; when empty it is omitted from the query.
func (c *Client) SentidosLineaAsync(idLinea string, idParada string, idioma string) *Call[*SentidosLineaResponse] {
	idioma, err := c.languageOrDefault(idioma)
	if err != nil {
		return failedCall[*SentidosLineaResponse](err)
	}

	params := []param{{"idLinea", idLinea}}
	if idParada != "" {
		params = append(params, param{"idParada", idParada})
	}
	params = append(params, param{"idioma", idioma})

	requestURL := c.buildURL("sentidosLinea", params)

	return submit(c, func() (*SentidosLineaResponse, error) {
		return getJSON[SentidosLineaResponse](c, requestURL)
	})
}

// SentidosLinea is the synchronous form of SentidosLineaAsync.
func (c *Client) SentidosLinea(idLinea string, idParada string, idioma string) (*SentidosLineaResponse, error) {
	return c.SentidosLineaAsync(idLinea, idParada, idioma).Wait()
}

// ExpedicionesItinerarioAsync retrieves the departure times of an itinerary
// at a stop within a time range. tipoDia distinguishes the schedule in effect
// (the service uses "H" when no value is given).
func (c *Client) ExpedicionesItinerarioAsync(idParada string, tipoDia string, hInicio time.Time, hFin time.Time, idItinerario string) *Call[*ExpedicionesItinerarioResponse] {
	requestURL := c.buildURL("expedicionesItinerario", []param{
		{"idParada", idParada},
		{"tipoDia", tipoDia},
		{"hInicio", hInicio.Format(timeLayout)},
		{"hFin", hFin.Format(timeLayout)},
		{"idItinerario", idItinerario},
	})

	return submit(c, func() (*ExpedicionesItinerarioResponse, error) {
		return getJSON[ExpedicionesItinerarioResponse](c, requestURL)
	})
}

// ExpedicionesItinerario is the synchronous form of
// ExpedicionesItinerarioAsync.
func (c *Client) ExpedicionesItinerario(idParada string, tipoDia string, hInicio time.Time, hFin time.Time, idItinerario string) (*ExpedicionesItinerarioResponse, error) {
	return c.ExpedicionesItinerarioAsync(idParada, tipoDia, hInicio, hFin, idItinerario).Wait()
}

// LineasParadaAsync retrieves the lines serving a stop for a day type within
// a time range.
func (c *Client) LineasParadaAsync(idParada string, tipoDia string, hInicio time.Time, hFin time.Time) *Call[*LineasParadaResponse] {
	requestURL := c.buildURL("lineasParada", []param{
		{"idParada", idParada},
		{"tipoDia", tipoDia},
		{"hInicio", hInicio.Format(timeLayout)},
		{"hFin", hFin.Format(timeLayout)},
	})

	return submit(c, func() (*LineasParadaResponse, error) {
		return getJSON[LineasParadaResponse](c, requestURL)
	})
}

// LineasParada is the synchronous form of LineasParadaAsync.
func (c *Client) LineasParada(idParada string, tipoDia string, hInicio time.Time, hFin time.Time) (*LineasParadaResponse, error) {
	return c.LineasParadaAsync(idParada, tipoDia, hInicio, hFin).Wait()
}

// ParadasItinerarioAsync retrieves the ordered stops of an itinerary.
func (c *Client) ParadasItinerarioAsync(idItinerario string) *Call[*ParadasItinerarioResponse] {
	requestURL := c.buildURL("paradasItinerario", []param{
		{"idItinerario", idItinerario},
	})

	return submit(c, func() (*ParadasItinerarioResponse, error) {
		return getJSON[ParadasItinerarioResponse](c, requestURL)
	})
}

// ParadasItinerario is the synchronous form of ParadasItinerarioAsync.
func (c *Client) ParadasItinerario(idItinerario string) (*ParadasItinerarioResponse, error) {
	return c.ParadasItinerarioAsync(idItinerario).Wait()
}

// ParadasSentidoAsync retrieves the ordered stops of a direction.
func (c *Client) ParadasSentidoAsync(idSentido string) *Call[*ParadasSentidoResponse] {
	requestURL := c.buildURL("paradasSentido", []param{
		{"idSentido", idSentido},
	})

	return submit(c, func() (*ParadasSentidoResponse, error) {
		return getJSON[ParadasSentidoResponse](c, requestURL)
	})
}

// ParadasSentido is the synchronous form of ParadasSentidoAsync.
func (c *Client) ParadasSentido(idSentido string) (*ParadasSentidoResponse, error) {
	return c.ParadasSentidoAsync(idSentido).Wait()
}

// RecorridoLineaAsync retrieves the route geometry of a line.
func (c *Client) RecorridoLineaAsync(idLinea string) *Call[*RecorridoLineaResponse] {
	requestURL := c.buildURL("recorridoLinea", []param{
		{"idLinea", idLinea},
	})

	return submit(c, func() (*RecorridoLineaResponse, error) {
		return getJSON[RecorridoLineaResponse](c, requestURL)
	})
}

// RecorridoLinea is the synchronous form of RecorridoLineaAsync.
func (c *Client) RecorridoLinea(idLinea string) (*RecorridoLineaResponse, error) {
	return c.RecorridoLineaAsync(idLinea).Wait()
}

// ListadoLineasAsync retrieves the full list of lines.
func (c *Client) ListadoLineasAsync() *Call[*ListadoLineasResponse] {
	requestURL := c.buildURL("listadoLineas", nil)

	return submit(c, func() (*ListadoLineasResponse, error) {
		return getJSON[ListadoLineasResponse](c, requestURL)
	})
}

// ListadoLineas is the synchronous form of ListadoLineasAsync.
func (c *Client) ListadoLineas() (*ListadoLineasResponse, error) {
	return c.ListadoLineasAsync().Wait()
}

// PuntosParadaAsync retrieves every stop point of the network.
func (c *Client) PuntosParadaAsync() *Call[*PuntosParadaResponse] {
	requestURL := c.buildURL("puntosParada", nil)

	return submit(c, func() (*PuntosParadaResponse, error) {
		return getJSON[PuntosParadaResponse](c, requestURL)
	})
}

// PuntosParada is the synchronous form of PuntosParadaAsync.
func (c *Client) PuntosParada() (*PuntosParadaResponse, error) {
	return c.PuntosParadaAsync().Wait()
}
