/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type retrievable interface {
	Avg() float64
	Min() float64
	Max() float64
}
type gettable interface {
	Get() float64
}

type reporter struct {
	*Metrics

	mu                        sync.Mutex
	lastReportedTotalRequests uint64
}

func NewReporter(c *Metrics) Reporter {
	if c.supportsGetters {
		return &reporter{Metrics: c}
	}
	return &emptyReporter{}
}

const noValues = "No values can be retrieved. Change the provider type."

type emptyReporter struct{}

func (c *emptyReporter) GetTotalRequests() string  { return noValues }
func (c *emptyReporter) GetActiveRequests() string { return noValues }
func (c *emptyReporter) Summary() string           { return noValues }

func (c *reporter) GetTotalRequests() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	currentTotalRequests := uint64(c.RequestsSent.(gettable).Get())
	requestsSinceLastReport := currentTotalRequests - c.lastReportedTotalRequests
	c.lastReportedTotalRequests = currentTotalRequests
	return fmt.Sprintf("Total requests since last report: %d", requestsSinceLastReport)
}

func (c *reporter) GetActiveRequests() string {
	return fmt.Sprintf("Active requests: %d", int(c.RequestsSent.(gettable).Get())-int(c.RequestsReceived.(gettable).Get()))
}

func (c *reporter) Summary() string {
	b := strings.Builder{}

	sent := c.RequestsSent.(gettable).Get()
	if sent == 0 {
		b.WriteString("No requests sent\n")
		return b.String()
	}
	d := c.RequestDuration.(retrievable)
	b.WriteString(fmt.Sprintf("Total requests %d, average duration of the request %v\n",
		int(sent), seconds(d.Avg())))
	received := c.RequestsReceived.(gettable).Get()
	b.WriteString(fmt.Sprintf("Success ratio %.2f%%\n",
		(received-c.RequestsFailed.(gettable).Get())/sent*100))
	b.WriteString(fmt.Sprintf("Minimum request took %v, maximum %v\n", seconds(d.Min()), seconds(d.Max())))

	return b.String()
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
