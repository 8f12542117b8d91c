package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/composite/pkg/cache"
	"github.com/matzehuels/composite/pkg/codec"
	"github.com/matzehuels/composite/pkg/encoding"
	apperrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/graph"
	"github.com/matzehuels/composite/pkg/node"
	"github.com/matzehuels/composite/pkg/observability"
	"github.com/matzehuels/composite/pkg/render"
)

// handleList returns the names of all stored graphs.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeStorage, err, "list graphs"))
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"graphs": names})
}

// handleSave stores the posted graph document under the path name. The
// document is decoded through the engine first, so structural violations
// (self-loops) are rejected before anything is written.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateGraphName(name); err != nil {
		writeError(w, err)
		return
	}

	var doc codec.Graph
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode graph document"))
		return
	}
	sys, err := codec.ToSystem(doc)
	if err != nil {
		writeError(w, err)
		return
	}

	// Re-encode through the engine so the stored form is canonical.
	if err := s.store.Save(r.Context(), name, codec.FromSystem(sys)); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeStorage, err, "save graph %q", name))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": name})
}

// handleLoad returns the stored graph document.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	doc, _, err := s.loadGraph(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleDelete removes the stored graph.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// treeNode is the JSON shape of the hierarchy encoding.
type treeNode struct {
	ID       string     `json:"id"`
	Children []treeNode `json:"children,omitempty"`
}

func toTreeNode(t *encoding.Tree) treeNode {
	out := treeNode{ID: string(t.ID())}
	for _, child := range t.Children() {
		out.Children = append(out.Children, toTreeNode(child))
	}
	return out
}

// handleConvert returns the graph in the requested encoding.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "encoding")
	if err := apperrors.ValidateEncodingName(target); err != nil {
		writeError(w, err)
		return
	}
	_, sys, err := s.loadGraph(r)
	if err != nil {
		writeError(w, err)
		return
	}

	switch target {
	case "adjacency":
		adj := sys.Adjacency()
		out := make(map[string][]string, len(adj))
		for _, id := range adj.Nodes() {
			succs := make([]string, 0, adj[id].Len())
			for _, succ := range adj[id].Sorted() {
				succs = append(succs, string(succ))
			}
			out[string(id)] = succs
		}
		writeJSON(w, http.StatusOK, out)
	case "edges":
		writeJSON(w, http.StatusOK, codec.FromSystem(sys).Edges)
	case "matrix":
		m := sys.Matrix()
		writeJSON(w, http.StatusOK, map[string]any{
			"labels": m.Labels,
			"cells":  m.Cells,
		})
	case "linear":
		l, err := sys.Linear()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, l)
	case "tree":
		t, err := sys.Tree()
		if err != nil {
			writeError(w, err)
			return
		}
		if t == nil {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeJSON(w, http.StatusOK, toTreeNode(t))
	}
}

// handlePaths enumerates paths through the graph. With start and stop
// query parameters it walks between the two nodes; without them it
// enumerates every root-to-endpoint pipeline. Results are cached keyed by
// the graph's content hash.
func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	doc, sys, err := s.loadGraph(r)
	if err != nil {
		writeError(w, err)
		return
	}

	start := r.URL.Query().Get("start")
	stop := r.URL.Query().Get("stop")
	if (start == "") != (stop == "") {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "start and stop must be given together"))
		return
	}

	key := s.keyer.PathsKey(docHash(doc), cache.PathsKeyOpts{Start: start, Stop: stop})
	if data, ok, _ := s.cache.Get(r.Context(), key); ok {
		observability.Cache().OnCacheHit(r.Context(), "paths")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "paths")

	var paths []graph.Pipeline
	if start != "" {
		paths = sys.Walk(node.ID(start), node.ID(stop))
	} else {
		paths = sys.Paths()
	}

	out := make([][]node.ID, 0, len(paths))
	for _, p := range paths {
		out = append(out, []node.ID(p))
	}
	body, err := json.Marshal(map[string]any{"paths": out})
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode paths"))
		return
	}
	_ = s.cache.Set(r.Context(), key, body, s.ttl)
	observability.Cache().OnCacheSet(r.Context(), "paths", len(body))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// artifactContentTypes maps render formats to their MIME types.
var artifactContentTypes = map[string]string{
	"dot": "text/vnd.graphviz",
	"svg": "image/svg+xml",
	"png": "image/png",
}

// handleRender returns the graph drawn in the requested format. Artifacts
// are cached keyed by the graph's content hash.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	contentType, ok := artifactContentTypes[format]
	if !ok {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidFormat, "unknown format: %q (want dot, svg, or png)", format))
		return
	}

	doc, sys, err := s.loadGraph(r)
	if err != nil {
		writeError(w, err)
		return
	}

	key := s.keyer.ArtifactKey(docHash(doc), cache.ArtifactKeyOpts{Format: format})
	if data, ok, _ := s.cache.Get(r.Context(), key); ok {
		observability.Cache().OnCacheHit(r.Context(), "artifact")
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "artifact")

	dot := render.ToDOT(sys, render.Options{})
	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(dot)
	case "png":
		data, err = render.RenderPNG(dot)
	}
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeRender, err, "render %s", format))
		return
	}
	_ = s.cache.Set(r.Context(), key, data, s.ttl)
	observability.Cache().OnCacheSet(r.Context(), "artifact", len(data))

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// loadGraph fetches the named document and decodes it into the engine.
func (s *Server) loadGraph(r *http.Request) (codec.Graph, *graph.System, error) {
	name := chi.URLParam(r, "name")
	doc, err := s.store.Load(r.Context(), name)
	if err != nil {
		return codec.Graph{}, nil, err
	}
	sys, err := codec.ToSystem(doc)
	if err != nil {
		return codec.Graph{}, nil, fmt.Errorf("stored graph %q: %w", name, err)
	}
	return doc, sys, nil
}

// docHash returns the content hash used in cache keys.
func docHash(doc codec.Graph) string {
	data, _ := json.Marshal(doc)
	return cache.Hash(data)
}
