package project

// Volume estimation is a stub. The hook point matters more than the value:
// refreshVolume runs synchronously after every successful file swap and
// before the change entry is appended, so the log always reflects the
// volume current at mutation time.

// TODO: parse the active file's geometry (.stl/.obj) and compute a real
// physical volume for cost calculation.

const placeholderVolume = 0.0

// refreshVolume recomputes Volume from the currently active file.
func (p *Project) refreshVolume() {
	p.Volume = estimateVolume(p.FilePath)
}

// estimateVolume returns the volume of the model at path, in cubic units.
func estimateVolume(path string) float64 {
	_ = path
	return placeholderVolume
}
