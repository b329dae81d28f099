// Package Metrics exports the shape of a tree as prometheus gauges.
package Metrics

import (
	"github.com/g-m-twostay/bstree/Trees"
	"github.com/prometheus/client_golang/prometheus"
)

// ShapeSource is anything that can report a Trees.Shape, usually a *Trees.BSTree.
type ShapeSource interface {
	Shape() Trees.Shape
}

// Collector computes the shape of its source on every scrape. The source must not
// be modified while a scrape runs.
type Collector struct {
	src                           ShapeSource
	size, height, leaves, partial *prometheus.Desc
	shape                         *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector makes a Collector whose metric names start with namespace.
func NewCollector(namespace string, src ShapeSource) *Collector {
	fq := func(n string) string {
		return prometheus.BuildFQName(namespace, "tree", n)
	}
	return &Collector{
		src:     src,
		size:    prometheus.NewDesc(fq("size"), "Number of nodes.", nil, nil),
		height:  prometheus.NewDesc(fq("height"), "Edges on the longest root to leaf path, -1 when empty.", nil, nil),
		leaves:  prometheus.NewDesc(fq("leaf_nodes"), "Number of nodes without children.", nil, nil),
		partial: prometheus.NewDesc(fq("partial_nodes"), "Number of nodes with exactly one child.", nil, nil),
		shape:   prometheus.NewDesc(fq("shape"), "1 if the tree has the structural property, 0 otherwise.", []string{"property"}, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.height
	ch <- c.leaves
	ch <- c.partial
	ch <- c.shape
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Shape()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(s.Height))
	ch <- prometheus.MustNewConstMetric(c.leaves, prometheus.GaugeValue, float64(s.Leaves))
	ch <- prometheus.MustNewConstMetric(c.partial, prometheus.GaugeValue, float64(s.Partial))
	for _, p := range []struct {
		name string
		v    bool
	}{{"balanced", s.Balanced}, {"complete", s.Complete}, {"full", s.FullTree}, {"perfect", s.Perfect}} {
		ch <- prometheus.MustNewConstMetric(c.shape, prometheus.GaugeValue, flag(p.v), p.name)
	}
}
