// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

// ListNetworks handles GET /networks.
func (h *Handlers) ListNetworks(w http.ResponseWriter, r *http.Request) {
	provinces := getStringParamPtr(r, "provinces")

	networks, err := h.store.ListNetworks(r.Context(), provinces)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, networkCollectionRep(networks))
}

// GetNetwork handles GET /networks/{id}.
func (h *Handlers) GetNetwork(w http.ResponseWriter, r *http.Request) {
	id, err := getURLInt(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	network, err := h.store.GetNetwork(r.Context(), id)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, networkRep(network))
}
