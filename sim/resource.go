package sim

import "fmt"

// levelEpsilon absorbs floating error in storage level comparisons.
const levelEpsilon = 1e-9

// Resource is an exclusive, capacity-limited pool with FIFO fairness:
// requests queue in arrival order and are granted as capacity frees.
// Berth pools, the crane pool and the railway tracks are all Resources.
type Resource struct {
	name     string
	capacity int
	inUse    int
	waiters  []Process
}

// NewResource creates a pool with the given slot capacity.
func NewResource(name string, capacity int) *Resource {
	return &Resource{name: name, capacity: capacity}
}

// Request claims a slot for p. If a slot is free it is granted
// immediately and Request returns true; the caller continues inline.
// Otherwise p joins the FIFO wait queue and will be resumed when a
// slot frees; Request returns false and the caller must suspend.
func (r *Resource) Request(sim *Simulator, now float64, p Process) bool {
	if r.inUse < r.capacity {
		r.inUse++
		return true
	}
	r.waiters = append(r.waiters, p)
	return false
}

// Release frees a slot. If waiters are queued, the slot passes directly
// to the head waiter, which is resumed at the current instant; the
// in-use count does not drop. Otherwise the slot returns to the pool.
func (r *Resource) Release(sim *Simulator, now float64) {
	if r.inUse <= 0 {
		panic(fmt.Sprintf("resource %s: release without matching request", r.name))
	}
	if len(r.waiters) > 0 {
		next := r.waiters[0]
		r.waiters = r.waiters[1:]
		sim.Schedule(&resumeEvent{time: now, proc: next})
		return
	}
	r.inUse--
}

// InUse returns the number of occupied slots.
func (r *Resource) InUse() int { return r.inUse }

// Capacity returns the configured slot count.
func (r *Resource) Capacity() int { return r.capacity }

// QueueLen returns the number of processes waiting for a slot.
func (r *Resource) QueueLen() int { return len(r.waiters) }

// Container is a bounded accumulator of tons with the invariant
// 0 ≤ level ≤ capacity. Ship processes deposit after checking headroom
// at the same simulated instant, and the rail dispatcher withdraws
// after checking stock, so Put and Get never block here; a violation
// means an engine bug and fails loudly. Cumulative deposit/withdrawal
// counters support conservation checks.
type Container struct {
	name      string
	capacity  float64
	level     float64
	deposited float64
	withdrawn float64
}

// NewContainer creates an empty container with the given capacity.
func NewContainer(name string, capacity float64) *Container {
	return &Container{name: name, capacity: capacity}
}

// Put deposits tons into the container. The caller must have verified
// headroom at the current instant.
func (c *Container) Put(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("storage %s: negative deposit %g", c.name, amount)
	}
	if c.level+amount > c.capacity+levelEpsilon {
		return fmt.Errorf("storage %s: deposit of %g tons exceeds capacity (%g/%g)",
			c.name, amount, c.level, c.capacity)
	}
	c.level += amount
	c.deposited += amount
	return nil
}

// Get withdraws tons from the container. The caller must have verified
// stock at the current instant.
func (c *Container) Get(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("storage %s: negative withdrawal %g", c.name, amount)
	}
	if amount > c.level+levelEpsilon {
		return fmt.Errorf("storage %s: withdrawal of %g tons exceeds stock %g",
			c.name, amount, c.level)
	}
	c.level -= amount
	if c.level < 0 {
		c.level = 0
	}
	c.withdrawn += amount
	return nil
}

// Level returns the current stock in tons.
func (c *Container) Level() float64 { return c.level }

// Capacity returns the configured bound in tons.
func (c *Container) Capacity() float64 { return c.capacity }

// Free returns the remaining headroom in tons.
func (c *Container) Free() float64 { return c.capacity - c.level }

// TotalDeposited returns the cumulative tons ever put.
func (c *Container) TotalDeposited() float64 { return c.deposited }

// TotalWithdrawn returns the cumulative tons ever taken.
func (c *Container) TotalWithdrawn() float64 { return c.withdrawn }
