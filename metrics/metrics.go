// Package metrics exports route-graph statistics in the Prometheus data model.
//
// The Collector reads the graph at scrape time, so it never goes stale and
// needs no update hooks. WriteText renders any Gatherer in the text
// exposition format; no HTTP listener is started here.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvroute/core"
)

// Collector is a prometheus.Collector over one core.Graph.
//
// Thread Safety: the graph is read during Collect; callers serialise scrapes
// with graph mutation.
type Collector struct {
	graph *core.Graph

	vertices  *prometheus.Desc
	links     *prometheus.Desc
	demand    *prometheus.Desc
	outDegree *prometheus.Desc
	height    *prometheus.Desc
}

// NewCollector describes the graph metrics under namespace:
//
//	<ns>_vertices                          gauge
//	<ns>_links                             gauge
//	<ns>_link_demand{from,to,edge}         counter
//	<ns>_vertex_out_degree{key}            gauge
//	<ns>_index_height                      gauge
func NewCollector(g *core.Graph, namespace string) *Collector {
	return &Collector{
		graph: g,
		vertices: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "vertices"),
			"Number of vertices in the route graph.", nil, nil),
		links: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "links"),
			"Number of directed edges in the route graph.", nil, nil),
		demand: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "link_demand"),
			"Number of returned routes that used the edge.", []string{"from", "to", "edge"}, nil),
		outDegree: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "vertex_out_degree"),
			"Outgoing edges per vertex.", []string{"key"}, nil),
		height: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "index_height"),
			"Height of the vertex index tree.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.vertices
	ch <- c.links
	ch <- c.demand
	ch <- c.outDegree
	ch <- c.height
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.graph.Stats()
	ch <- prometheus.MustNewConstMetric(c.vertices, prometheus.GaugeValue, float64(st.VertexCount))
	ch <- prometheus.MustNewConstMetric(c.links, prometheus.GaugeValue, float64(st.EdgeCount))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(st.IndexHeight))

	for v := range c.graph.Vertices() {
		ch <- prometheus.MustNewConstMetric(c.outDegree, prometheus.GaugeValue,
			float64(c.graph.OutDegree(v.Key)), v.Key)
	}
	for l := range c.graph.Edges() {
		ch <- prometheus.MustNewConstMetric(c.demand, prometheus.CounterValue,
			float64(l.Edge.Demand), l.Edge.From, l.Edge.To, l.Edge.ID)
	}
}

// WriteText gathers g and writes every metric family in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	var mf *dto.MetricFamily
	for _, mf = range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
