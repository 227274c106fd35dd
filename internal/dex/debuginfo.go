package dex

// ParameterNames 读取 debug_info_item 中记录的参数名。
// 未记录调试信息时返回 nil；单个参数名缺失时对应元素为 nil。
func (f *File) ParameterNames(code *CodeItem) ([]*string, error) {
	if code == nil || code.DebugInfoOff == 0 {
		return nil, nil
	}
	c := newCursor(f.data, code.DebugInfoOff)
	c.uleb() // line_start
	size := c.uleb()
	if !c.fits(size, 1) {
		return nil, c.err
	}
	names := make([]*string, size)
	for i := range names {
		idx := c.ulebp1()
		if c.err != nil {
			return nil, c.err
		}
		if idx >= 0 && int(idx) < len(f.Strings) {
			name := f.Strings[idx]
			names[i] = &name
		}
	}
	return names, nil
}
