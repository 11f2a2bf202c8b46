// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import "net/http"

// ListHistories handles GET /histories. Unlike stations, histories default
// to the full representation; URIs are omitted from collection items.
func (h *Handlers) ListHistories(w http.ResponseWriter, r *http.Request) {
	provinces := getStringParamPtr(r, "provinces")
	compact := getBoolParam(r, "compact", false)

	ctx := r.Context()
	histories, err := h.store.AllHistoriesWithStats(ctx, provinces)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	varsByHistory, err := h.store.AllVariableIDsByHistory(ctx, h.cfg.GroupVarsInDatabase)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK,
		historyCollectionRep(histories, varsByHistory, compact, false))
}

// GetHistory handles GET /histories/{id}. Single items carry their URI.
func (h *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := getURLInt(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	compact := getBoolParam(r, "compact", false)

	ctx := r.Context()
	history, err := h.store.GetHistory(ctx, id)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	variableIDs, err := h.store.VariableIDsForHistory(ctx, id)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}

	ids := make([]int64, len(variableIDs))
	for i, v := range variableIDs {
		ids[i] = int64(v)
	}
	respondJSON(w, http.StatusOK, historyRep(history, ids, compact, true))
}
