package netlist

import (
	"iter"
)

// Instance is a primitive cell placed in a netlist. Connectivity is
// recorded per port: ins[i] is the net driving input i (nil when
// disconnected), outs[j] is the net driven by output j (nil when the
// output is left dangling).
type Instance struct {
	owner *Netlist
	name  Identifier
	cell  *CellType
	ins   []*Net
	outs  []*Net
}

// Name returns the instance name.
func (i *Instance) Name() Identifier { return i.name }

// Cell returns the instance's cell definition.
func (i *Instance) Cell() *CellType { return i.cell }

// IsSeq reports whether the instance is a sequential cell.
func (i *Instance) IsSeq() bool { return i.cell.IsSeq() }

// NumInputs returns the instance's input port count.
func (i *Instance) NumInputs() int { return len(i.ins) }

// NumOutputs returns the instance's output port count.
func (i *Instance) NumOutputs() int { return len(i.outs) }

// Input returns the net driving input port k, or nil if disconnected.
func (i *Instance) Input(k int) *Net { return i.ins[k] }

// Output returns the net driven by output port k, or nil.
func (i *Instance) Output(k int) *Net { return i.outs[k] }

// PortRef identifies one input port of one instance.
type PortRef struct {
	Inst *Instance
	Port int
}

type netDriver struct {
	inst *Instance
	port int
}

// Net is a named wire with at most one driver and any number of
// consuming input ports. A net driven by a top-level module input has
// no driving instance; a net read by a top-level module output is
// externally observable and roots reachability during Clean.
type Net struct {
	owner     *Netlist
	name      Identifier
	driver    *netDriver
	consumers []PortRef
	external  bool // driven by a top-level input port
	observed  bool // read by a top-level output port
}

// Name returns the net name.
func (n *Net) Name() Identifier { return n.name }

// Driver returns the driving instance and output port index, if any.
func (n *Net) Driver() (*Instance, int, bool) {
	if n.driver == nil {
		return nil, 0, false
	}
	return n.driver.inst, n.driver.port, true
}

// Consumers returns the input ports reading this net. The slice is
// owned by the net; callers must not modify it.
func (n *Net) Consumers() []PortRef { return n.consumers }

// IsExternalInput reports whether the net is driven by a top-level
// module input.
func (n *Net) IsExternalInput() bool { return n.external }

// IsObservedOutput reports whether the net is read by a top-level
// module output.
func (n *Net) IsObservedOutput() bool { return n.observed }

// Netlist is the canonical mutable representation of a circuit: it owns
// every instance and net and is the single source of truth for
// connectivity. All reads and writes from other components go through
// it. Iteration order over instances and nets is insertion order and is
// stable until a mutation removes or renames objects.
//
// Net and instance names share one namespace; any operation that would
// produce a duplicate fully-qualified name fails with a
// *StructuralError.
type Netlist struct {
	name      string
	instances []*Instance
	nets      []*Net
	instIndex map[Identifier]*Instance
	netIndex  map[Identifier]*Net
	inputs    []*Net
	outputs   []*Net
	cache     map[AnalysisKind]any
}

// New creates an empty netlist for the named module.
func New(name string) *Netlist {
	return &Netlist{
		name:      name,
		instIndex: make(map[Identifier]*Instance),
		netIndex:  make(map[Identifier]*Net),
		cache:     make(map[AnalysisKind]any),
	}
}

// Name returns the module name.
func (n *Netlist) Name() string { return n.name }

// Len counts live objects: instances plus nets.
func (n *Netlist) Len() int { return len(n.instances) + len(n.nets) }

// Instances returns the live instances in insertion order. The slice
// is owned by the netlist; callers must not modify it.
func (n *Netlist) Instances() []*Instance { return n.instances }

// Nets returns the live nets in insertion order. The slice is owned by
// the netlist; callers must not modify it.
func (n *Netlist) Nets() []*Net { return n.nets }

// Inputs returns the nets driven by top-level input ports, in
// declaration order.
func (n *Netlist) Inputs() []*Net { return n.inputs }

// Outputs returns the nets read by top-level output ports, in
// declaration order.
func (n *Netlist) Outputs() []*Net { return n.outputs }

// Instance looks up a live instance by name.
func (n *Netlist) Instance(name Identifier) (*Instance, bool) {
	inst, ok := n.instIndex[name]
	return inst, ok
}

// Net looks up a live net by name.
func (n *Netlist) Net(name Identifier) (*Net, bool) {
	net, ok := n.netIndex[name]
	return net, ok
}

// Matches returns a lazy, restartable sequence of the instances
// satisfying pred, in insertion order. The order is stable across
// restarts as long as no mutation occurs between them.
func (n *Netlist) Matches(pred func(*Instance) bool) iter.Seq[*Instance] {
	return func(yield func(*Instance) bool) {
		for _, inst := range n.instances {
			if pred(inst) && !yield(inst) {
				return
			}
		}
	}
}

func (n *Netlist) nameTaken(id Identifier) bool {
	if _, ok := n.instIndex[id]; ok {
		return true
	}
	_, ok := n.netIndex[id]
	return ok
}

// AddNet creates a new net. The name must be unused.
func (n *Netlist) AddNet(id Identifier) (*Net, error) {
	if n.nameTaken(id) {
		return nil, structuralf("add-net", id, "name already in use")
	}
	net := &Net{owner: n, name: id}
	n.nets = append(n.nets, net)
	n.netIndex[id] = net
	n.InvalidateAnalyses()
	return net, nil
}

// AddInstance creates a new instance of the given cell with all ports
// disconnected. The name must be unused.
func (n *Netlist) AddInstance(id Identifier, cell *CellType) (*Instance, error) {
	if n.nameTaken(id) {
		return nil, structuralf("add-instance", id, "name already in use")
	}
	inst := &Instance{
		owner: n,
		name:  id,
		cell:  cell,
		ins:   make([]*Net, len(cell.Inputs)),
		outs:  make([]*Net, len(cell.Outputs)),
	}
	n.instances = append(n.instances, inst)
	n.instIndex[id] = inst
	n.InvalidateAnalyses()
	return inst, nil
}

// MarkInput marks net as driven by a top-level input port.
func (n *Netlist) MarkInput(net *Net) error {
	if err := n.owns("mark-input", net); err != nil {
		return err
	}
	if net.driver != nil {
		return structuralf("mark-input", net.name, "net already has a driver")
	}
	if !net.external {
		net.external = true
		n.inputs = append(n.inputs, net)
		n.InvalidateAnalyses()
	}
	return nil
}

// MarkOutput marks net as read by a top-level output port, making it
// externally observable.
func (n *Netlist) MarkOutput(net *Net) error {
	if err := n.owns("mark-output", net); err != nil {
		return err
	}
	if !net.observed {
		net.observed = true
		n.outputs = append(n.outputs, net)
		n.InvalidateAnalyses()
	}
	return nil
}

// ConnectInput wires net into input port k of inst.
func (n *Netlist) ConnectInput(inst *Instance, k int, net *Net) error {
	if err := n.ownsInst("connect-input", inst); err != nil {
		return err
	}
	if err := n.owns("connect-input", net); err != nil {
		return err
	}
	if k < 0 || k >= len(inst.ins) {
		return structuralf("connect-input", inst.name, "no input port %d (cell %s has %d)", k, inst.cell.Name, len(inst.ins))
	}
	if inst.ins[k] != nil {
		return structuralf("connect-input", inst.name, "input port %d already connected to %q", k, inst.ins[k].name)
	}
	inst.ins[k] = net
	net.consumers = append(net.consumers, PortRef{Inst: inst, Port: k})
	n.InvalidateAnalyses()
	return nil
}

// ConnectOutput makes output port k of inst the driver of net. A net
// has at most one driver.
func (n *Netlist) ConnectOutput(inst *Instance, k int, net *Net) error {
	if err := n.ownsInst("connect-output", inst); err != nil {
		return err
	}
	if err := n.owns("connect-output", net); err != nil {
		return err
	}
	if k < 0 || k >= len(inst.outs) {
		return structuralf("connect-output", inst.name, "no output port %d (cell %s has %d)", k, inst.cell.Name, len(inst.outs))
	}
	if net.driver != nil {
		return structuralf("connect-output", net.name, "net already driven by %q", net.driver.inst.name)
	}
	if net.external {
		return structuralf("connect-output", net.name, "net is driven by a top-level input")
	}
	if inst.outs[k] != nil {
		return structuralf("connect-output", inst.name, "output port %d already drives %q", k, inst.outs[k].name)
	}
	inst.outs[k] = net
	net.driver = &netDriver{inst: inst, port: k}
	n.InvalidateAnalyses()
	return nil
}

// Disconnect clears input port k of inst and returns the net that was
// disconnected, or nil if the port was already disconnected. Already
// disconnected is not an error; the call is idempotent.
func (n *Netlist) Disconnect(inst *Instance, k int) (*Net, error) {
	if err := n.ownsInst("disconnect", inst); err != nil {
		return nil, err
	}
	if k < 0 || k >= len(inst.ins) {
		return nil, structuralf("disconnect", inst.name, "no input port %d (cell %s has %d)", k, inst.cell.Name, len(inst.ins))
	}
	net := inst.ins[k]
	if net == nil {
		return nil, nil
	}
	inst.ins[k] = nil
	net.dropConsumer(inst, k)
	n.InvalidateAnalyses()
	return net, nil
}

// RemapInput renames input port k of inst without changing
// connectivity. Only naming changes, so cached analyses stay valid.
func (n *Netlist) RemapInput(inst *Instance, k int, name string) error {
	if err := n.ownsInst("remap-input", inst); err != nil {
		return err
	}
	cell, err := inst.cell.RemapInput(k, name)
	if err != nil {
		return err
	}
	inst.cell = cell
	return nil
}

// RemapOutput renames output port k of inst without changing
// connectivity.
func (n *Netlist) RemapOutput(inst *Instance, k int, name string) error {
	if err := n.ownsInst("remap-output", inst); err != nil {
		return err
	}
	cell, err := inst.cell.RemapOutput(k, name)
	if err != nil {
		return err
	}
	inst.cell = cell
	return nil
}

// SetInstanceName renames a single instance. The new name must not
// collide with any live object. Analyses are invalidated because
// ordering heuristics tie-break on names.
func (n *Netlist) SetInstanceName(inst *Instance, id Identifier) error {
	if err := n.ownsInst("set-instance-name", inst); err != nil {
		return err
	}
	if id == inst.name {
		return nil
	}
	if n.nameTaken(id) {
		return structuralf("set-instance-name", id, "name already in use")
	}
	delete(n.instIndex, inst.name)
	inst.name = id
	n.instIndex[id] = inst
	n.InvalidateAnalyses()
	return nil
}

func (n *Netlist) owns(op string, net *Net) error {
	if net == nil || net.owner != n {
		return structuralf(op, "", "net does not belong to this netlist")
	}
	return nil
}

func (n *Netlist) ownsInst(op string, inst *Instance) error {
	if inst == nil || inst.owner != n {
		return structuralf(op, "", "instance does not belong to this netlist")
	}
	return nil
}

func (net *Net) dropConsumer(inst *Instance, port int) {
	for i, ref := range net.consumers {
		if ref.Inst == inst && ref.Port == port {
			net.consumers = append(net.consumers[:i], net.consumers[i+1:]...)
			return
		}
	}
}
