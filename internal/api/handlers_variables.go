// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

// ListVariables handles GET /variables. Only variables of published
// networks with at least one station history are returned; the provinces
// filter restricts the qualifying networks, not individual variables.
func (h *Handlers) ListVariables(w http.ResponseWriter, r *http.Request) {
	provinces := getStringParamPtr(r, "provinces")

	variables, err := h.store.ListVariables(r.Context(), provinces)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, variableCollectionRep(variables))
}

// GetVariable handles GET /variables/{id}.
func (h *Handlers) GetVariable(w http.ResponseWriter, r *http.Request) {
	id, err := getURLInt(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	variable, err := h.store.GetVariable(r.Context(), id)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, variableRep(variable))
}
