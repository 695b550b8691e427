package kicad

// MapLayer maps a vendor footprint layer id to a KiCad layer name for
// general graphics (lines, circles, arcs, texts).
func MapLayer(layerID int) string {
	switch layerID {
	case 1:
		return "F.Cu"
	case 2:
		return "B.Cu"
	case 3:
		return "F.SilkS"
	case 4:
		return "B.SilkS"
	case 5:
		return "F.Paste"
	case 6:
		return "B.Paste"
	case 7:
		return "F.Mask"
	case 8:
		return "B.Mask"
	case 10, 11:
		return "Edge.Cuts"
	case 12:
		return "Cmts.User"
	case 13:
		return "F.Fab"
	case 14:
		return "B.Fab"
	case 15:
		return "Dwgs.User"
	case 101:
		return "F.Fab"
	default:
		return "F.SilkS"
	}
}

// MapPadLayersSMD maps a vendor layer id to the KiCad pad layer set for
// an SMD pad (copper + paste + mask).
func MapPadLayersSMD(layerID int) []string {
	switch layerID {
	case 1:
		return []string{"F.Cu", "F.Paste", "F.Mask"}
	case 2:
		return []string{"B.Cu", "B.Paste", "B.Mask"}
	case 3:
		return []string{"F.SilkS"}
	case 11:
		return []string{"*.Cu", "*.Paste", "*.Mask"}
	case 13:
		return []string{"F.Fab"}
	case 15:
		return []string{"Dwgs.User"}
	default:
		return []string{"F.Cu", "F.Paste", "F.Mask"}
	}
}

// MapPadLayersTHT maps a vendor layer id to the KiCad pad layer set for
// a through-hole pad (no paste layer).
func MapPadLayersTHT(layerID int) []string {
	switch layerID {
	case 1:
		return []string{"F.Cu", "F.Mask"}
	case 2:
		return []string{"B.Cu", "B.Mask"}
	case 3:
		return []string{"F.SilkS"}
	case 11:
		return []string{"*.Cu", "*.Mask"}
	case 13:
		return []string{"F.Fab"}
	case 15:
		return []string{"Dwgs.User"}
	default:
		return []string{"*.Cu", "*.Mask"}
	}
}
