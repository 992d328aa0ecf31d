package middleware

import (
	"runtime"
	"strconv"
	"time"

	"api/metrics"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	log "github.com/sirupsen/logrus"
)

// UpdateSystemMetrics periodically updates process and host metrics
func UpdateSystemMetrics() {
	go func() {
		for {
			updateMemoryMetrics()
			updateHostMetrics()
			time.Sleep(15 * time.Second)
		}
	}()
}

func updateMemoryMetrics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	metrics.MemoryStats.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	metrics.MemoryStats.WithLabelValues("sys").Set(float64(memStats.Sys))
	metrics.MemoryStats.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
	metrics.MemoryStats.WithLabelValues("heap_sys").Set(float64(memStats.HeapSys))
	metrics.MemoryStats.WithLabelValues("heap_idle").Set(float64(memStats.HeapIdle))
	metrics.MemoryStats.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))

	metrics.GoroutineCount.Set(float64(runtime.NumGoroutine()))
}

func updateHostMetrics() {
	if percents, err := cpu.Percent(0, true); err == nil {
		for i, pct := range percents {
			metrics.SystemCPUUsage.WithLabelValues(strconv.Itoa(i)).Set(pct)
		}
	} else {
		log.Debugf("failed to read CPU usage: %v", err)
	}

	if avg, err := load.Avg(); err == nil {
		metrics.SystemLoadAverage.WithLabelValues("1min").Set(avg.Load1)
		metrics.SystemLoadAverage.WithLabelValues("5min").Set(avg.Load5)
		metrics.SystemLoadAverage.WithLabelValues("15min").Set(avg.Load15)
	}

	partitions, err := disk.Partitions(false)
	if err != nil {
		return
	}
	for _, part := range partitions {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			continue
		}
		metrics.SystemDiskUsage.WithLabelValues(part.Device, part.Mountpoint, "used").Set(float64(usage.Used))
		metrics.SystemDiskUsage.WithLabelValues(part.Device, part.Mountpoint, "free").Set(float64(usage.Free))
		metrics.SystemDiskUsage.WithLabelValues(part.Device, part.Mountpoint, "total").Set(float64(usage.Total))
	}
}
