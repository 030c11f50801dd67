package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	uploadsTotal       atomic.Uint64
	uploadsFailedTotal atomic.Uint64
	downloadsTotal     atomic.Uint64
	deletesTotal       atomic.Uint64

	uploadSize = newHistogram([]float64{
		1 << 10, 16 << 10, 256 << 10, 1 << 20, 4 << 20, 8 << 20, 16 << 20,
	})
)

// IncUpload increments the successful upload counter and records the size.
func IncUpload(sizeBytes int64) {
	uploadsTotal.Add(1)
	uploadSize.Observe(float64(sizeBytes))
}

// IncUploadFailed increments the failed upload counter.
func IncUploadFailed() {
	uploadsFailedTotal.Add(1)
}

// IncDownload increments the download counter.
func IncDownload() {
	downloadsTotal.Add(1)
}

// IncDelete increments the delete counter.
func IncDelete() {
	deletesTotal.Add(1)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "files_uploaded_total", "Total files uploaded", uploadsTotal.Load())
	writeCounter(&buf, "files_upload_failed_total", "Total failed upload attempts", uploadsFailedTotal.Load())
	writeCounter(&buf, "files_downloaded_total", "Total files downloaded", downloadsTotal.Load())
	writeCounter(&buf, "files_deleted_total", "Total files deleted", deletesTotal.Load())
	writeHistogram(&buf, "file_upload_size_bytes", "Uploaded payload size in bytes", uploadSize.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
