package catalog

// Per-type display colors, shared by every host.
const (
	colorProcessor  = "#ff9f40"
	colorMemory     = "#4a90e2"
	colorStorage    = "#66c066"
	colorNetwork    = "#c061cb"
	colorPeripheral = "#e27280"
	colorKernel     = "#f6c930"
)

// Builtin returns the standard OSland component set.
func Builtin() *Catalog {
	return New([]Template{
		{ID: "cpu", Name: "CPU", Type: "processor", Category: "Processors", Color: colorProcessor,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "gpu", Name: "GPU", Type: "processor", Category: "Processors", Color: colorProcessor,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "ram", Name: "RAM", Type: "memory", Category: "Memory", Color: colorMemory,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "rom", Name: "ROM", Type: "memory", Category: "Memory", Color: colorMemory,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "hard_disk", Name: "Hard Disk", Type: "storage", Category: "Storage", Color: colorStorage,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "ssd", Name: "SSD", Type: "storage", Category: "Storage", Color: colorStorage,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "nic", Name: "Network Card", Type: "network", Category: "Network", Color: colorNetwork,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "router", Name: "Router", Type: "network", Category: "Network", Color: colorNetwork,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "keyboard", Name: "Keyboard", Type: "peripheral", Category: "Peripherals", Color: colorPeripheral,
			Outputs: []string{"out"}},
		{ID: "mouse", Name: "Mouse", Type: "peripheral", Category: "Peripherals", Color: colorPeripheral,
			Outputs: []string{"out"}},
		{ID: "monitor", Name: "Monitor", Type: "peripheral", Category: "Peripherals", Color: colorPeripheral,
			Inputs: []string{"in"}},
		{ID: "kernel", Name: "Kernel", Type: "kernel", Category: "Kernel", Color: colorKernel,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "scheduler", Name: "Scheduler", Type: "kernel", Category: "Kernel", Color: colorKernel,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "memory_manager", Name: "Memory Manager", Type: "kernel", Category: "Kernel", Color: colorKernel,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "file_system", Name: "File System", Type: "kernel", Category: "Kernel", Color: colorKernel,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
		{ID: "driver", Name: "Driver", Type: "kernel", Category: "Kernel", Color: colorKernel,
			Inputs: []string{"in"}, Outputs: []string{"out"}},
	})
}
