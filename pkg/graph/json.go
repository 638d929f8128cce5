package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"
)

type jsonGraph struct {
	Vertices []string    `json:"vertices"`
	Edges    [][2]string `json:"edges"`
}

func (g *Graph) MarshalJSON() ([]byte, error) {
	r := jsonGraph{
		Vertices: g.Vertices(),
		Edges:    [][2]string{},
	}
	if r.Vertices == nil {
		r.Vertices = []string{}
	}
	for _, e := range g.Edges() {
		r.Edges = append(r.Edges, [2]string{e.A, e.B})
	}
	return json.Marshal(&r)
}

func (g *Graph) UnmarshalJSON(data []byte) error {
	var r jsonGraph

	err := json.Unmarshal(data, &r)
	if err != nil {
		return err
	}
	edges := make([]Edge, 0, len(r.Edges))
	for _, e := range r.Edges {
		edges = append(edges, Edge{A: e[0], B: e[1]})
	}
	n, err := New(r.Vertices, edges...)
	if err != nil {
		return err
	}
	*g = *n
	return nil
}

// Fingerprint returns a hash over the canonical JSON
// representation of the graph. Equal graphs have equal fingerprints.
func (g *Graph) Fingerprint() string {
	data, err := json.Marshal(g)
	if err != nil {
		panic(err)
	}
	data, err = jcs.Transform(data)
	if err != nil {
		panic(err)
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
