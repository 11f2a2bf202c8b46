// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

// Frequencies handles GET /frequencies: the distinct observation
// frequencies across all histories, as a bare array.
func (h *Handlers) Frequencies(w http.ResponseWriter, r *http.Request) {
	frequencies, err := h.store.Frequencies(r.Context())
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	if frequencies == nil {
		frequencies = []*string{}
	}
	respondJSON(w, http.StatusOK, frequencies)
}

// NetworkGeoserver handles GET /crmp_network_geoserver: the denormalized
// per-history view consumed by mapping front-ends. The endpoint name
// matches the view it exposes.
func (h *Handlers) NetworkGeoserver(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.NetworkGeoserver(r.Context())
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, networkGeoserverCollectionRep(items))
}
