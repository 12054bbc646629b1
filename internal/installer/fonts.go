package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"wsl-dev-setup/internal/config"
	"wsl-dev-setup/internal/logger"
	"wsl-dev-setup/internal/probe"
)

// FontInstalled probes whether any face of the named font family is
// already present in the per-user font directory.
func FontInstalled(name string) probe.State {
	matches, err := filepath.Glob(filepath.Join(userFontDir(), "*"+name+"*"))
	if err != nil {
		logger.Debug("[DEBUG] Font glob failed for %s: %v\n", name, err)
		return probe.Unknown
	}
	if len(matches) > 0 {
		return probe.Present
	}
	return probe.Absent
}

// InstallFont downloads the font's release asset from GitHub, extracts it,
// copies every font face into the per-user font directory, and registers
// the faces with the OS. Returns the installed file paths.
func InstallFont(font config.Font) ([]string, error) {
	release, err := fetchRelease(font.Repo, font.Tag)
	if err != nil {
		return nil, err
	}
	url, err := release.assetURL(font.Asset)
	if err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "wsl-dev-setup-font-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() {
		if rerr := os.RemoveAll(workDir); rerr != nil {
			logger.Warn("[WARN] Failed to clean up %s: %v\n", workDir, rerr)
		}
	}()

	archive := filepath.Join(workDir, font.Asset)
	logger.Info("[INFO] Downloading font asset %s...\n", font.Asset)
	if err := downloadFile(url, archive); err != nil {
		return nil, err
	}

	extracted := filepath.Join(workDir, "extracted")
	if err := os.MkdirAll(extracted, 0755); err != nil {
		return nil, err
	}
	if err := extractArchive(archive, extracted); err != nil {
		return nil, fmt.Errorf("failed to extract font archive: %w", err)
	}

	faces, err := findFontFaces(extracted)
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no font files found in %s", font.Asset)
	}

	fontDir := userFontDir()
	if err := os.MkdirAll(fontDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create font directory %s: %w", fontDir, err)
	}

	var installed []string
	for _, face := range faces {
		dest := filepath.Join(fontDir, filepath.Base(face))
		if err := copyFile(face, dest); err != nil {
			logger.Error("[ERROR] Failed to install font face %s: %v\n", filepath.Base(face), err)
			continue
		}
		if err := registerFont(dest); err != nil {
			logger.Warn("[WARN] Installed %s but failed to register it: %v\n", filepath.Base(dest), err)
		}
		installed = append(installed, dest)
	}
	if len(installed) == 0 {
		return nil, fmt.Errorf("failed to install any face of %s", font.Name)
	}

	logger.Info("[INFO] Installed %d font face(s) of %s\n", len(installed), font.Name)
	return installed, nil
}

// findFontFaces walks the extracted tree and collects the .ttf/.otf files.
// Nerd Font archives ship a "Windows Compatible" variant of every face;
// when such variants exist only those are kept to avoid duplicate family
// registrations.
func findFontFaces(root string) ([]string, error) {
	var faces, windowsCompatible []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf":
			faces = append(faces, path)
			if strings.Contains(filepath.Base(path), "Windows Compatible") {
				windowsCompatible = append(windowsCompatible, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(windowsCompatible) > 0 {
		return windowsCompatible, nil
	}
	return faces, nil
}

// userFontDir returns the per-user font directory. No elevation needed to
// write there, unlike the system font directory.
func userFontDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fonts")
}

// copyFile copies a file, creating missing destination directories.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close %s: %v\n", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
