// Package orchestrator sequences one component's conversion end to end:
// fetch, decode, build the intermediate model, emit each requested target
// format, and write it into the output library. It mirrors
// ComponentConverter::convert from the original desktop implementation,
// but delegates every format's field-by-field logic to internal/kicad and
// internal/altium rather than re-deriving it here.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/altium"
	"github.com/linkyourbin/nlbn-gui/internal/apperror"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
	"github.com/linkyourbin/nlbn-gui/internal/easyedaapi"
	"github.com/linkyourbin/nlbn-gui/internal/kicad"
	"github.com/linkyourbin/nlbn-gui/internal/library"
	"github.com/linkyourbin/nlbn-gui/internal/logging"
	"github.com/linkyourbin/nlbn-gui/internal/model"
)

// Options controls which artifacts one Convert call produces. It is the
// Go analogue of the desktop app's ConversionOptions struct.
type Options struct {
	OutputDir        string
	ConvertSymbol    bool
	ConvertFootprint bool
	Convert3D        bool
	KicadV5          bool
	ProjectRelative  bool
	Overwrite        bool
	TargetKicad      bool
	TargetAltium     bool
}

// Result reports what one component conversion produced.
type Result struct {
	LcscID        string
	ComponentName string
	Success       bool
	Message       string
	Files         []string
}

// Convert fetches lcscID via fetcher and writes every artifact Options
// requests under opts.OutputDir. It never returns a partial failure as an
// error: individual artifact failures are folded into Result.Message and
// Result.Success, since one component's footprint failing shouldn't stop
// its symbol from reaching the library.
func Convert(ctx context.Context, fetcher easyedaapi.Fetcher, lcscID string, opts Options) *Result {
	mgr := library.New(opts.OutputDir)
	if err := mgr.CreateDirectories(); err != nil {
		return &Result{LcscID: lcscID, Success: false, Message: err.Error()}
	}

	data, err := fetcher.GetComponentData(ctx, lcscID)
	if err != nil {
		return &Result{LcscID: lcscID, Success: false, Message: err.Error()}
	}

	name := sanitizeComponentName(data.Title)
	if name == "" {
		name = sanitizeComponentName(lcscID)
	}

	result := &Result{LcscID: lcscID, ComponentName: name, Success: true}
	var notices []string

	if opts.ConvertSymbol {
		if len(data.DataStr) == 0 {
			notices = append(notices, "symbol: skipped, empty shape stream")
		} else {
			convertSymbol(mgr, data, name, opts, result, &notices)
		}
	}
	if opts.ConvertFootprint {
		if len(data.PackageDetail) == 0 {
			notices = append(notices, "footprint: skipped, empty shape stream")
		} else {
			convertFootprint(mgr, data, name, opts, result, &notices)
		}
	}
	if opts.Convert3D && data.Model3D != nil {
		convert3D(ctx, fetcher, mgr, data, name, result, &notices)
	}

	if len(notices) > 0 {
		result.Message = strings.Join(notices, "; ")
	}
	return result
}

func convertSymbol(mgr *library.Manager, data *easyeda.ComponentData, name string, opts Options, result *Result, notices *[]string) {
	sym, err := easyeda.ParseSymbol(data.DataStr)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("symbol: %v", err))
		result.Success = false
		return
	}

	if opts.TargetKicad {
		version := kicad.V6
		if opts.KicadV5 {
			version = kicad.V5
		}
		kiSym := kicad.BuildSymbol(sym, name)
		block, err := kicad.NewSymbolExporter(version).Export(kiSym)
		if err != nil {
			*notices = append(*notices, fmt.Sprintf("kicad symbol: %v", err))
			result.Success = false
		} else {
			libPath := mgr.SymbolLibPath(opts.KicadV5)
			written, err := library.AddOrUpdateSymbol(libPath, name, block, opts.Overwrite)
			if err != nil {
				*notices = append(*notices, fmt.Sprintf("kicad symbol library: %v", err))
				result.Success = false
			} else if written {
				result.Files = append(result.Files, libPath)
			} else {
				*notices = append(*notices, fmt.Sprintf("kicad symbol %q already exists, skipped", name))
			}
		}
	}

	if opts.TargetAltium {
		adSym := altium.BuildSymbol(sym, name)
		content, err := altium.NewSymbolExporter().Export(adSym)
		if err != nil {
			*notices = append(*notices, fmt.Sprintf("altium symbol: %v", err))
			result.Success = false
			return
		}
		path := mgr.AltiumSymbolPath(name)
		if err := library.WriteFile(path, []byte(content)); err != nil {
			*notices = append(*notices, fmt.Sprintf("altium symbol write: %v", err))
			result.Success = false
			return
		}
		result.Files = append(result.Files, path)
	}
}

func convertFootprint(mgr *library.Manager, data *easyeda.ComponentData, name string, opts Options, result *Result, notices *[]string) {
	fp, err := easyeda.ParseFootprint(data.PackageDetail)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("footprint: %v", err))
		result.Success = false
		return
	}

	if opts.TargetKicad {
		kiFp := kicad.BuildFootprint(fp, name)
		// The model reference is always present so the footprint picks
		// up the .wrl the moment it lands in nlbn.3dshapes, even when
		// this run skipped 3D conversion.
		kiFp.Model3D = &kicad.Ki3dModel{
			Path:  modelRefPath(mgr, name, opts.ProjectRelative),
			Scale: [3]float64{1, 1, 1},
		}
		content, err := kicad.NewFootprintExporter().Export(kiFp)
		if err != nil {
			*notices = append(*notices, fmt.Sprintf("kicad footprint: %v", err))
			result.Success = false
		} else {
			path := mgr.FootprintPath(name)
			if err := library.WriteFile(path, []byte(content)); err != nil {
				*notices = append(*notices, fmt.Sprintf("kicad footprint write: %v", err))
				result.Success = false
			} else {
				result.Files = append(result.Files, path)
			}
		}
	}

	if opts.TargetAltium {
		adFp := altium.BuildFootprint(fp, name)
		content, err := altium.NewFootprintExporter().Export(adFp)
		if err != nil {
			*notices = append(*notices, fmt.Sprintf("altium footprint: %v", err))
			result.Success = false
			return
		}
		path := mgr.AltiumFootprintPath(name)
		if err := library.WriteFile(path, []byte(content)); err != nil {
			*notices = append(*notices, fmt.Sprintf("altium footprint write: %v", err))
			result.Success = false
			return
		}
		result.Files = append(result.Files, path)
	}
}

func convert3D(ctx context.Context, fetcher easyedaapi.Fetcher, mgr *library.Manager, data *easyeda.ComponentData, name string, result *Result, notices *[]string) {
	objData, err := fetcher.Download3DObj(ctx, data.Model3D.UUID)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("3d model: %v", err))
		return
	}
	mesh, err := model.ParseOBJ(objData)
	if err != nil {
		*notices = append(*notices, fmt.Sprintf("3d model: %v", err))
		return
	}
	wrl := model.WriteVRML(mesh)
	wrlPath := mgr.WRLPath(name)
	if err := library.WriteFile(wrlPath, []byte(wrl)); err != nil {
		*notices = append(*notices, fmt.Sprintf("3d model write: %v", err))
		return
	}
	result.Files = append(result.Files, wrlPath)

	step, err := fetcher.Download3DStep(ctx, data.Model3D.UUID)
	if err != nil {
		logging.Warn("step model unavailable", logging.Fields{"lcsc_id": data.LcscID, "err": err.Error()})
		return
	}
	stepPath := mgr.STEPPath(name)
	if err := library.WriteFile(stepPath, step); err != nil {
		*notices = append(*notices, fmt.Sprintf("step model write: %v", err))
		return
	}
	result.Files = append(result.Files, stepPath)
}

// modelRefPath is the 3D-model path embedded in the footprint: the
// project-variable form when the library travels with a KiCad project,
// otherwise the absolute path of the .wrl this run writes.
func modelRefPath(mgr *library.Manager, name string, projectRelative bool) string {
	if projectRelative {
		return "${KIPRJMOD}/nlbn.3dshapes/" + name + ".wrl"
	}
	return mgr.WRLPath(name)
}

// sanitizeComponentName keeps alphanumerics, '-', and '_'; everything
// else becomes '_'. Leading/trailing underscores are trimmed so a
// title full of punctuation doesn't degenerate into a file named "_".
func sanitizeComponentName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// NotFound reports whether err represents a missing component
// (apperror.ErrComponentNotFound).
func NotFound(err error) bool {
	return errors.Is(err, apperror.ErrComponentNotFound)
}
